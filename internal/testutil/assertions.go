package testutil

import (
	"errors"
	"testing"

	apperrors "khata/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidationMessage checks that err is a validation AppError carrying
// the exact caller-visible message.
func AssertValidationMessage(t *testing.T, err error, expectedMessage string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected validation error %q, got nil", expectedMessage)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != "VALIDATION_FAILED" {
		t.Errorf("expected code VALIDATION_FAILED, got %q", appErr.Code)
	}
	if appErr.Message != expectedMessage {
		t.Errorf("expected message %q, got %q", expectedMessage, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
