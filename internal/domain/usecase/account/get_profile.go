package account

import (
	"context"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
)

// GetProfile returns the user's account
func (s *Service) GetProfile(ctx context.Context, userID int64) (*entity.Account, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.accounts(ctx).GetByID(ctx, userID)
}
