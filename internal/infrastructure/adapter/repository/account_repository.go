package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements the AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model and its entitlement rows to an entity
func (r *AccountRepository) modelToEntity(m *model.Account, entitlements []string) *entity.Account {
	return &entity.Account{
		UserID:       m.UserID,
		DisplayName:  m.DisplayName,
		Language:     entity.Language(m.Language),
		RegisteredAt: m.RegisteredAt.UTC(),
		Balance:      m.Balance,
		Entitlements: entity.NormalizeEntitlements(entitlements),
		IsAdmin:      m.IsAdmin,
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, userID int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Account not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrAccountNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Debug("Account already exists", map[string]any{
			"user_id": userID,
		})
		return errs.ErrAccountAlreadyExists
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id":    userID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}

// Create inserts a new account. A concurrent insert of the same user ID
// loses quietly and reports ErrAccountAlreadyExists.
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating account", map[string]any{
		"user_id":  account.UserID,
		"language": string(account.Language),
	})

	now := r.timeProvider.Now()
	accountModel := model.Account{
		UserID:       account.UserID,
		DisplayName:  account.DisplayName,
		Language:     string(account.Language),
		RegisteredAt: account.RegisteredAt,
		Balance:      account.Balance,
		IsAdmin:      account.IsAdmin,
		UpdatedAt:    now,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountAlreadyExists
	}

	if len(account.Entitlements) > 0 {
		if err := r.insertEntitlements(ctx, account.UserID, account.Entitlements); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves an account with its entitlements
func (r *AccountRepository) GetByID(ctx context.Context, userID int64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&accountModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, userID)
	}

	var entitlements []string
	result = r.db.WithContext(ctx).Model(&model.AccountEntitlement{}).
		Where("user_id = ?", userID).
		Order("entitlement").
		Pluck("entitlement", &entitlements)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting entitlements", result.Error, userID)
	}

	return r.modelToEntity(&accountModel, entitlements), nil
}

// UpdateField changes one field of the account. Each field maps to its own
// statement so concurrent updates of different fields never overwrite each other.
func (r *AccountRepository) UpdateField(ctx context.Context, userID int64, field entity.AccountField, value any) error {
	switch field {
	case entity.FieldLanguage:
		var tag string
		switch v := value.(type) {
		case entity.Language:
			tag = string(v)
		case string:
			tag = v
		default:
			return fmt.Errorf("%w: %s expects a language, got %T", errs.ErrInvalidField, field, value)
		}
		lang, err := entity.ParseLanguage(tag)
		if err != nil {
			return err
		}
		return r.updateColumn(ctx, userID, "language", string(lang))

	case entity.FieldDisplayName:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s expects a string, got %T", errs.ErrInvalidField, field, value)
		}
		return r.updateColumn(ctx, userID, "display_name", name)

	case entity.FieldIsAdmin:
		isAdmin, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects a bool, got %T", errs.ErrInvalidField, field, value)
		}
		return r.updateColumn(ctx, userID, "is_admin", isAdmin)

	case entity.FieldBalance:
		switch delta := value.(type) {
		case int64:
			return r.IncrementBalance(ctx, userID, delta)
		case int:
			return r.IncrementBalance(ctx, userID, int64(delta))
		default:
			return fmt.Errorf("%w: %s expects an integer increment, got %T", errs.ErrInvalidField, field, value)
		}

	case entity.FieldEntitlements:
		switch items := value.(type) {
		case string:
			return r.AddEntitlements(ctx, userID, items)
		case []string:
			return r.AddEntitlements(ctx, userID, items...)
		default:
			return fmt.Errorf("%w: %s expects entitlement names, got %T", errs.ErrInvalidField, field, value)
		}

	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidField, field)
	}
}

// updateColumn performs a single-column last-write-wins update
func (r *AccountRepository) updateColumn(ctx context.Context, userID int64, column string, value any) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			column:       value,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating "+column, result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account field updated", map[string]any{
		"user_id": userID,
		"field":   column,
	})
	return nil
}

// IncrementBalance adds delta to the balance in a single atomic statement
func (r *AccountRepository) IncrementBalance(ctx context.Context, userID int64, delta int64) error {
	if delta <= 0 {
		return errs.ErrInvalidCredit
	}

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("incrementing balance", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Balance incremented", map[string]any{
		"user_id": userID,
		"delta":   delta,
	})
	return nil
}

// AddEntitlements grants entitlements the account does not own yet
func (r *AccountRepository) AddEntitlements(ctx context.Context, userID int64, entitlements ...string) error {
	items := entity.NormalizeEntitlements(entitlements)
	if len(items) == 0 {
		return nil
	}

	var count int64
	result := r.db.WithContext(ctx).Model(&model.Account{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return r.handleDatabaseError("checking account", result.Error, userID)
	}
	if count == 0 {
		return errs.ErrAccountNotFound
	}

	return r.insertEntitlements(ctx, userID, items)
}

func (r *AccountRepository) insertEntitlements(ctx context.Context, userID int64, items []string) error {
	now := r.timeProvider.Now()
	rows := make([]model.AccountEntitlement, 0, len(items))
	for _, item := range entity.NormalizeEntitlements(items) {
		rows = append(rows, model.AccountEntitlement{
			UserID:      userID,
			Entitlement: item,
			GrantedAt:   now,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "entitlement"}},
			DoNothing: true,
		}).
		Create(&rows)
	if result.Error != nil {
		return r.handleDatabaseError("granting entitlements", result.Error, userID)
	}

	r.logger.Debug("Entitlements granted", map[string]any{
		"user_id":      userID,
		"entitlements": items,
		"inserted":     result.RowsAffected,
	})
	return nil
}
