package migration

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/persistence"
)

// PromoteAdmins sets the administrator flag for the configured user IDs.
// Users that have not registered yet are skipped and picked up on a later start.
func PromoteAdmins(ctx context.Context, accounts persistence.AccountRepository, userIDs []int64, logger coreport.Logger) (int, error) {
	promoted := 0
	for _, userID := range userIDs {
		err := accounts.UpdateField(ctx, userID, entity.FieldIsAdmin, true)
		if errors.Is(err, errs.ErrAccountNotFound) {
			logger.Info("Administrator not registered yet", map[string]any{
				"user_id": userID,
			})
			continue
		}
		if err != nil {
			return promoted, err
		}
		promoted++
	}

	if promoted > 0 {
		logger.Info("Administrators promoted", map[string]any{
			"count": promoted,
		})
	}
	return promoted, nil
}
