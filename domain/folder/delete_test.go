package folder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeleteMethod(t *testing.T) {
	tests := []struct {
		in     string
		want   DeleteMethod
		wantOK bool
	}{
		{"", DeleteSoft, true},
		{"purge", DeletePurge, true},
		{" ARCHIVE ", DeleteArchive, true},
		{"LOOK_FOR_LINEAGE", DeleteLookForLineage, true},
		{"shred", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDeleteMethod(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDeleteMethod_Purges(t *testing.T) {
	assert.True(t, DeletePurge.Purges())
	assert.False(t, DeleteSoft.Purges())
	assert.False(t, DeleteArchive.Purges())
	assert.False(t, DeleteLookForLineage.Purges())
}
