package error

import (
	"errors"
	"fmt"
)

// Error codes used in structured logs and HTTP error bodies
const (
	// 4xxx - Expected branches and client errors
	CodeInvalidUserID        = 4001
	CodeInvalidLanguage      = 4002
	CodeInvalidAmount        = 4003
	CodeInvalidField         = 4004
	CodeMalformedEvent       = 4005
	CodeInvalidSignature     = 4006
	CodeAccountExists        = 4090
	CodeInvoiceApplied       = 4091
	CodeAccountNotFound      = 4040
	CodeInvoiceNotFound      = 4041
	CodeInvariantViolation   = 4220
	CodeProcessorRejected    = 4221
	CodeProcessorUnavailable = 5030
	CodeStoreUnavailable     = 5031

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Expected branches: normal control flow, never logged above warn
var (
	// ErrAccountNotFound is returned when no account exists for the user yet
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when creating an account whose user ID is taken
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvoiceNotFound is returned when the tracker has no record of the invoice
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceAlreadyApplied is returned when the invoice credit was already applied
	ErrInvoiceAlreadyApplied = errors.New("invoice already applied")
)

// Transient faults: surfaced to users as "try again later"
var (
	// ErrStoreUnavailable is returned when the account or invoice store cannot serve a request
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrProcessorUnavailable is returned when the payment processor times out or fails on the network
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
)

// Invariant violations: logged at error severity and discarded
var (
	// ErrInvariantViolation marks events that contradict tracked state
	ErrInvariantViolation = errors.New("invariant violation")
)

// Validation errors
var (
	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidLanguage is returned for a locale tag the bot does not support
	ErrInvalidLanguage = errors.New("unsupported language")

	// ErrInvalidAmount is returned when a payment amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidCredit is returned when a balance increment is not positive
	ErrInvalidCredit = errors.New("credit must be positive")

	// ErrInvalidField is returned by field-level updates for an unknown field or value type
	ErrInvalidField = errors.New("invalid account field")

	// ErrInvalidInvoiceStatus is returned for a status outside the invoice lifecycle
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")

	// ErrMalformedEvent is returned when a processor event cannot be decoded into a signal
	ErrMalformedEvent = errors.New("malformed payment event")

	// ErrInvalidSignature is returned when a webhook body fails signature verification
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrProcessorRejected is returned when the processor answers with an API-level error
	ErrProcessorRejected = errors.New("payment processor rejected request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Kind is the coarse error class used to decide logging severity and user-visible behavior
type Kind string

const (
	KindNone               Kind = ""
	KindExpectedBranch     Kind = "expected_branch"
	KindTransientFault     Kind = "transient_fault"
	KindInvariantViolation Kind = "invariant_violation"
	KindValidation         Kind = "validation"
	KindInternal           Kind = "internal"
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidLanguage):
		return CodeInvalidLanguage
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidCredit):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidField):
		return CodeInvalidField
	case errors.Is(err, ErrMalformedEvent):
		return CodeMalformedEvent
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrAccountAlreadyExists):
		return CodeAccountExists
	case errors.Is(err, ErrInvoiceAlreadyApplied):
		return CodeInvoiceApplied
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrInvoiceNotFound):
		return CodeInvoiceNotFound
	case errors.Is(err, ErrInvariantViolation):
		return CodeInvariantViolation
	case errors.Is(err, ErrProcessorRejected):
		return CodeProcessorRejected
	case errors.Is(err, ErrProcessorUnavailable):
		return CodeProcessorUnavailable
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// KindOf classifies err into the reconciliation error taxonomy
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case IsExpectedBranch(err):
		return KindExpectedBranch
	case IsInvariantViolation(err):
		return KindInvariantViolation
	case IsTransient(err):
		return KindTransientFault
	case errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidLanguage),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidCredit),
		errors.Is(err, ErrInvalidField),
		errors.Is(err, ErrInvalidInvoiceStatus),
		errors.Is(err, ErrInvalidSignature):
		return KindValidation
	default:
		return KindInternal
	}
}

// IsExpectedBranch reports whether err is a normal control-flow outcome
func IsExpectedBranch(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrAccountAlreadyExists) ||
		errors.Is(err, ErrInvoiceNotFound) ||
		errors.Is(err, ErrInvoiceAlreadyApplied)
}

// IsTransient reports whether err should be shown to the user as "try again later"
func IsTransient(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrProcessorUnavailable) ||
		errors.Is(err, ErrProcessorRejected)
}

// IsInvariantViolation reports whether err describes an event that contradicts tracked state
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation) || errors.Is(err, ErrMalformedEvent)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrInvoiceNotFound)
}

// Violation reasons, kept low-cardinality for metric labels
const (
	ReasonPayloadMismatch = "payload_mismatch"
	ReasonAmountMismatch  = "amount_mismatch"
	ReasonAssetMismatch   = "asset_mismatch"
	ReasonMalformedEvent  = "malformed_event"
	ReasonBadSignature    = "bad_signature"
	ReasonAccountMissing  = "account_missing"
	ReasonTerminalInvoice = "terminal_invoice"
)

// InvariantViolationError describes an event the engine refused to act on
type InvariantViolationError struct {
	InvoiceID      string
	TrackedUserID  int64
	ReportedUserID string
	Reason         string
	Detail         string
}

// Error implements the error interface
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation for invoice %s (%s): %s",
		e.InvoiceID, e.Reason, e.Detail)
}

// Is checks if the target error is an ErrInvariantViolation
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// LogFields returns a map of fields for structured logging
func (e *InvariantViolationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       string(KindInvariantViolation),
		"invoice_id":       e.InvoiceID,
		"tracked_user_id":  e.TrackedUserID,
		"reported_payload": e.ReportedUserID,
		"reason":           e.Reason,
		"detail":           e.Detail,
		"error_code":       CodeInvariantViolation,
	}
}

// NewInvariantViolationError creates a detailed invariant violation error
func NewInvariantViolationError(invoiceID string, trackedUserID int64, reportedPayload, reason, detail string) error {
	return &InvariantViolationError{
		InvoiceID:      invoiceID,
		TrackedUserID:  trackedUserID,
		ReportedUserID: reportedPayload,
		Reason:         reason,
		Detail:         detail,
	}
}

// CreditError wraps a store failure that happened while applying a paid invoice.
// The invoice stays unapplied so a later signal can retry the credit.
type CreditError struct {
	InvoiceID string
	UserID    int64
	Credits   int64
	Err       error
}

// Error implements the error interface
func (e *CreditError) Error() string {
	return fmt.Sprintf("credit of %d for user %d from invoice %s failed: %v",
		e.Credits, e.UserID, e.InvoiceID, e.Err)
}

// Unwrap returns the underlying error
func (e *CreditError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CreditError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "credit_error",
		"invoice_id": e.InvoiceID,
		"user_id":    e.UserID,
		"credits":    e.Credits,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCreditError creates a detailed credit failure error
func NewCreditError(invoiceID string, userID, credits int64, err error) error {
	return &CreditError{
		InvoiceID: invoiceID,
		UserID:    userID,
		Credits:   credits,
		Err:       err,
	}
}

// ProcessorError carries an API-level error returned by the payment processor
type ProcessorError struct {
	Method string
	Code   int
	Name   string
}

// Error implements the error interface
func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor %s failed: %d %s", e.Method, e.Code, e.Name)
}

// Is checks if the target error is an ErrProcessorRejected
func (e *ProcessorError) Is(target error) bool {
	return target == ErrProcessorRejected
}

// LogFields returns a map of fields for structured logging
func (e *ProcessorError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "processor_error",
		"method":     e.Method,
		"code":       e.Code,
		"name":       e.Name,
		"error_code": CodeProcessorRejected,
	}
}

// LogFields extracts structured fields from err when it carries any
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_type": string(KindOf(err)),
		"error_code": ErrorCode(err),
	}
}
