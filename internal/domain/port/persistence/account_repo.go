package persistence

import (
	"context"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
)

// AccountRepository is the durable per-user account store
type AccountRepository interface {
	// Create inserts a new account
	//
	// Possible errors:
	// - ErrAccountAlreadyExists: the user ID is already registered (expected under /start races)
	// - ErrStoreUnavailable: the store could not serve the request
	Create(ctx context.Context, account *entity.Account) error

	// GetByID fetches an account with its entitlements
	//
	// Possible errors:
	// - ErrAccountNotFound: the user has not registered yet
	// - ErrStoreUnavailable: the store could not serve the request
	GetByID(ctx context.Context, userID int64) (*entity.Account, error)

	// UpdateField changes a single field without touching the rest of the record.
	// Balance values are applied as an increment and entitlement values are merged into the set.
	//
	// Possible errors:
	// - ErrAccountNotFound: no account with that user ID
	// - ErrInvalidField: unknown field or wrong value type
	// - ErrStoreUnavailable: the store could not serve the request
	UpdateField(ctx context.Context, userID int64, field entity.AccountField, value any) error

	// IncrementBalance atomically adds delta (> 0) to the balance
	IncrementBalance(ctx context.Context, userID int64, delta int64) error

	// AddEntitlements inserts the given entitlements if the account does not own them yet
	AddEntitlements(ctx context.Context, userID int64, entitlements ...string) error
}
