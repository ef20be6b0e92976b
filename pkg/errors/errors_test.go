package errors

import (
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := NewInvalidRecord("follower count is %d", -3)
	want := "invalid_record error: follower count is -3"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		insufficientData bool
		invalidRecord    bool
		configuration    bool
	}{
		{"insufficient data", NewInsufficientData("no posts"), true, false, false},
		{"invalid record", NewInvalidRecord("negative count"), false, true, false},
		{"configuration", NewConfiguration("empty keyword set"), false, false, true},
		{"plain error", fmt.Errorf("something else"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInsufficientData(tt.err); got != tt.insufficientData {
				t.Errorf("IsInsufficientData = %v, want %v", got, tt.insufficientData)
			}
			if got := IsInvalidRecord(tt.err); got != tt.invalidRecord {
				t.Errorf("IsInvalidRecord = %v, want %v", got, tt.invalidRecord)
			}
			if got := IsConfiguration(tt.err); got != tt.configuration {
				t.Errorf("IsConfiguration = %v, want %v", got, tt.configuration)
			}
		})
	}
}

func TestWrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("extraction failed: %w", NewInsufficientData("no posts"))
	if !IsInsufficientData(wrapped) {
		t.Error("Expected wrapped insufficient-data error to match")
	}
}

func TestIsRecoverable(t *testing.T) {
	if !IsRecoverable(ErrorTypeInsufficientData) {
		t.Error("Expected insufficient_data to be recoverable")
	}
	if IsRecoverable(ErrorTypeInvalidRecord) {
		t.Error("Expected invalid_record to be fatal")
	}
	if IsRecoverable(ErrorTypeConfiguration) {
		t.Error("Expected configuration to be fatal")
	}
}
