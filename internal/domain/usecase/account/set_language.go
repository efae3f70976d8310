package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
)

// SetLanguage stores the user's language choice. An unregistered user is
// registered with that language; otherwise only the language column changes.
func (s *Service) SetLanguage(ctx context.Context, userID int64, displayName string, lang entity.Language) (bool, error) {
	if userID <= 0 {
		return false, errs.ErrInvalidUserID
	}
	if _, err := entity.ParseLanguage(string(lang)); err != nil {
		return false, err
	}

	err := s.accounts(ctx).UpdateField(ctx, userID, entity.FieldLanguage, lang)
	if err == nil {
		s.logger.Info("Account language updated", map[string]any{
			"user_id":  userID,
			"language": string(lang),
		})
		return false, nil
	}
	if !errors.Is(err, errs.ErrAccountNotFound) {
		s.logger.Error("Failed to update account language", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return false, err
	}

	created, err := s.Onboard(ctx, userID, displayName, lang)
	if err != nil || created {
		return created, err
	}

	// Someone registered the user between our update and create; apply the choice to their record
	if err := s.accounts(ctx).UpdateField(ctx, userID, entity.FieldLanguage, lang); err != nil {
		s.logger.Error("Failed to update account language", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return false, err
	}
	return false, nil
}
