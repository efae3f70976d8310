package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrAccountNotFound.Error() != "account not found" {
		t.Errorf("ErrAccountNotFound has unexpected message: %s", ErrAccountNotFound.Error())
	}
	if ErrInvoiceAlreadyApplied.Error() != "invoice already applied" {
		t.Errorf("ErrInvoiceAlreadyApplied has unexpected message: %s", ErrInvoiceAlreadyApplied.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidUserID", ErrInvalidUserID, CodeInvalidUserID},
		{"InvalidLanguage", ErrInvalidLanguage, CodeInvalidLanguage},
		{"AccountExists", ErrAccountAlreadyExists, CodeAccountExists},
		{"AccountNotFound", ErrAccountNotFound, CodeAccountNotFound},
		{"InvoiceApplied", ErrInvoiceAlreadyApplied, CodeInvoiceApplied},
		{"StoreUnavailable", ErrStoreUnavailable, CodeStoreUnavailable},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrProcessorUnavailable), CodeProcessorUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"Nil", nil, KindNone},
		{"NotFound", ErrAccountNotFound, KindExpectedBranch},
		{"AlreadyApplied", fmt.Errorf("mark: %w", ErrInvoiceAlreadyApplied), KindExpectedBranch},
		{"Store", fmt.Errorf("%w: connection refused", ErrStoreUnavailable), KindTransientFault},
		{"Processor", &ProcessorError{Method: "createInvoice", Code: 400, Name: "ASSET_INVALID"}, KindTransientFault},
		{"Violation", NewInvariantViolationError("inv-1", 42, "43", ReasonPayloadMismatch, "x"), KindInvariantViolation},
		{"Malformed", fmt.Errorf("%w: missing invoice_id", ErrMalformedEvent), KindInvariantViolation},
		{"Validation", ErrInvalidLanguage, KindValidation},
		{"Internal", errors.New("boom"), KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.expected {
				t.Errorf("KindOf(%v) = %q, want %q", tc.err, got, tc.expected)
			}
		})
	}
}

func TestInvariantViolationError(t *testing.T) {
	err := NewInvariantViolationError("inv-9", 42, "77", ReasonPayloadMismatch, "payload does not match tracked user")

	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("errors.Is(err, ErrInvariantViolation) = false, want true")
	}

	var violation *InvariantViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("errors.As failed for InvariantViolationError")
	}

	fields := violation.LogFields()
	if fields["invoice_id"] != "inv-9" || fields["reason"] != ReasonPayloadMismatch {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestCreditError(t *testing.T) {
	baseErr := fmt.Errorf("%w: disk full", ErrStoreUnavailable)
	err := NewCreditError("inv-1", 42, 10, baseErr)

	expected := "credit of 10 for user 42 from invoice inv-1 failed: store unavailable: disk full"
	if err.Error() != expected {
		t.Errorf("CreditError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsTransient(err) {
		t.Errorf("IsTransient(creditErr) = false, want true")
	}
}

func TestLogFields(t *testing.T) {
	plain := LogFields(ErrStoreUnavailable)
	if plain["error_code"] != CodeStoreUnavailable {
		t.Errorf("unexpected error_code: %v", plain["error_code"])
	}

	wrapped := LogFields(fmt.Errorf("outer: %w", NewCreditError("inv-2", 1, 5, ErrStoreUnavailable)))
	if wrapped["error_type"] != "credit_error" {
		t.Errorf("expected credit_error fields, got %v", wrapped)
	}
}
