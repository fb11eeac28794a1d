package failure_test

import (
	"adbook/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("booked revenue must be non-negative"),
			code:    http.StatusBadRequest,
			message: "booked revenue must be non-negative",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("deal not found"),
			code:    http.StatusNotFound,
			message: "deal not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("deal has placements"),
			code:    http.StatusConflict,
			message: "deal has placements",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("store write failed")),
			code:    http.StatusInternalServerError,
			message: "store write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, fail.Message)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("placement not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("saving placement: %w", failure.Conflict("duplicate")),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, code)
			}
		})
	}
}
