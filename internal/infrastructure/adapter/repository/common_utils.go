package repository

import (
	"strings"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier sorts driver errors from postgres and sqlite into coarse types.
// Drivers do not share typed errors, so classification is by message.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return ""
	}
}

func containsAny(err error, fragments ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return containsAny(err,
		"duplicate key",
		"UNIQUE constraint",
		"SQLSTATE 23505",
	)
}

// IsTransientError checks if the error is likely to go away on its own
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return containsAny(err,
		"connection reset",
		"connection refused",
		"timeout",
		"deadline exceeded",
		"EOF",
		"server closed",
		"broken pipe",
	)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	return containsAny(err,
		"deadlock",
		"lock wait timeout",
		"could not serialize access",
		"database is locked",
		"SQLITE_BUSY",
	)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return containsAny(err, "connection", "dial", "network", "sql: database is closed") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	return containsAny(err, "constraint", "violates", "foreign key", "NOT NULL", "not null") ||
		c.IsDuplicateKeyError(err)
}
