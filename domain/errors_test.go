package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinels_Wrap(t *testing.T) {
	for _, sentinel := range []error{ErrNotFound, ErrValidation, ErrConflict} {
		wrapped := fmt.Errorf("folder %q: %w", "abc", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("wrapped error should match %v with errors.Is", sentinel)
		}
	}
}

func TestSentinels_Distinct(t *testing.T) {
	if errors.Is(ErrNotFound, ErrConflict) || errors.Is(ErrValidation, ErrNotFound) {
		t.Error("sentinel errors should be distinct")
	}
}
