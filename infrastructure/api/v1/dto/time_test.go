package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochTime_Marshal(t *testing.T) {
	data, err := json.Marshal(NewEpochTime(sampleTime))
	require.NoError(t, err)
	assert.Equal(t, "1709294400123", string(data))

	data, err = json.Marshal(EpochTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	assert.Nil(t, NewEpochTime(time.Time{}))
}

func TestEpochTime_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "millis", in: `1709294400123`, want: sampleTime},
		{name: "float millis", in: `1709294400123.0`, want: sampleTime},
		{name: "rfc3339", in: `"2024-03-01T12:00:00.123Z"`, want: sampleTime},
		{name: "rfc3339 offset", in: `"2024-03-01T13:00:00.123+01:00"`, want: sampleTime},
		{name: "quoted millis", in: `"1709294400123"`, want: sampleTime},
		{name: "null", in: `null`},
		{name: "garbage", in: `"yesterday"`, wantErr: true},
		{name: "object", in: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var et EpochTime
			err := json.Unmarshal([]byte(tt.in), &et)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, et.Time().Equal(tt.want), "got %s", et)
		})
	}
}

func TestEpochTime_NullPointerField(t *testing.T) {
	var body DateResponse
	require.NoError(t, json.Unmarshal([]byte(`{"relatedHTTPCode":200,"date":null}`), &body))
	assert.Nil(t, body.Date)
	assert.Nil(t, body.Result())
}

func TestEpochTime_EqualIgnoresSubMillis(t *testing.T) {
	a := EpochTime(sampleTime)
	b := EpochTime(sampleTime.Add(400 * time.Microsecond))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(EpochTime(sampleTime.Add(time.Millisecond))))
}
