package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
)

// Onboard registers a user. Two racing calls for the same user produce
// exactly one creation; the loser sees created == false and no error.
func (s *Service) Onboard(ctx context.Context, userID int64, displayName string, lang entity.Language) (bool, error) {
	account, err := entity.NewAccount(userID, displayName, lang, s.timeProvider)
	if err != nil {
		return false, err
	}

	if err := s.accounts(ctx).Create(ctx, account); err != nil {
		if errors.Is(err, errs.ErrAccountAlreadyExists) {
			s.logger.Debug("Account already registered", map[string]any{
				"user_id": userID,
			})
			return false, nil
		}
		s.logger.Error("Failed to register account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return false, err
	}

	s.logger.Info("Account registered", map[string]any{
		"user_id":  userID,
		"language": string(account.Language),
	})
	return true, nil
}
