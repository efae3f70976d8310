package usecase

import (
	"context"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
)

// AccountUseCase defines the account operations exposed to the chat layer
type AccountUseCase interface {
	// Onboard registers the user. created is false when the account already existed.
	Onboard(ctx context.Context, userID int64, displayName string, lang entity.Language) (created bool, err error)

	// SetLanguage changes the user's language, registering the user first if needed.
	// Balance and entitlements are never touched.
	SetLanguage(ctx context.Context, userID int64, displayName string, lang entity.Language) (created bool, err error)

	// GetProfile returns the current account record
	GetProfile(ctx context.Context, userID int64) (*entity.Account, error)
}
