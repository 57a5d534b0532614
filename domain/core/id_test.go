package core

import (
	"fmt"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseRequestID tests request ID parsing
func TestParseRequestID(t *testing.T) {
	tests := []struct {
		input    string
		expected RequestID
		hasError bool
	}{
		{"0192f7a0-6c2e-7b7e-9a51-3f1c1d2e4b5a", RequestID("0192f7a0-6c2e-7b7e-9a51-3f1c1d2e4b5a"), false},
		{"  0192F7A0-6C2E-7B7E-9A51-3F1C1D2E4B5A ", RequestID("0192f7a0-6c2e-7b7e-9a51-3f1c1d2e4b5a"), false},
		{"", "", true},
		{"   ", "", true},
		{"not-a-uuid", "", true},
	}

	for _, test := range tests {
		result, err := ParseRequestID(test.input)
		if test.hasError {
			if err == nil {
				t.Errorf("Expected error for input %q, got nil", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %q, got %q", test.expected, result)
		}
	}
}

// TestIsLoadError tests classification of wrapped load errors
func TestIsLoadError(t *testing.T) {
	wrapped := NewRowError(3, "class", ErrInvalidOutcome)
	if !IsLoadError(wrapped) {
		t.Errorf("Expected %v to be a load error", wrapped)
	}
	if !IsLoadError(NewMissingColumnError("Launch Site")) {
		t.Error("Expected missing column to be a load error")
	}
	if IsLoadError(fmt.Errorf("boom")) {
		t.Error("Expected plain error not to be a load error")
	}
}
