package account

import (
	"context"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
)

// Service handles account registration and preference changes
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AccountUseCase = (*Service)(nil)

// NewService creates a new account Service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *Service) accounts(ctx context.Context) persistence.AccountRepository {
	return s.uow.GetAccountRepository(ctx)
}
