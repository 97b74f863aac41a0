package accountservice

import (
	"context"
	"errors"

	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByName(ctx context.Context, name string) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetForUpdate(ctx context.Context, accountID int64) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	UpdateBalance(ctx context.Context, accountID, newAmount int64) (*domain.Account, error)
}

type SummaryRepo interface {
	Upsert(ctx context.Context, entry *domain.SummaryEntry) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.SummaryEntry, error)
	FindDrift(ctx context.Context, limit int) ([]domain.Account, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.Withdrawal, error)
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
)

type Service struct {
	userRepo       UserRepo
	accountRepo    AccountRepo
	withdrawalRepo WithdrawalRepo
	summaryRepo    SummaryRepo
	txManager      pg.TXManager
}

func New(userRepo UserRepo, accountRepo AccountRepo, withdrawalRepo WithdrawalRepo, summaryRepo SummaryRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		summaryRepo:    summaryRepo,
		txManager:      txManager,
	}
}

// Create registers a user on first use of a name and opens a new account for
// them. A case-insensitive name match reuses the existing user record instead
// of creating a duplicate. The user insert, account insert, and summary row
// all land in one transaction.
func (s *Service) Create(ctx context.Context, user *domain.User, initialAmount int64) (*domain.User, *domain.Account, error) {
	var account *domain.Account

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByName(ctx, user.Name)
		if err != nil {
			zap.L().Error("can't find user: ", zap.Error(err))
			return err
		}
		if existing != nil {
			zap.L().Info("user already exists, reusing", zap.String("name", existing.Name), zap.Int64("userID", existing.ID))
			user = existing
		} else {
			user, err = s.userRepo.Create(ctx, user)
			if err != nil {
				zap.L().Error("can't create user: ", zap.Error(err))
				return err
			}
		}

		account, err = s.accountRepo.Create(ctx, &domain.Account{
			UserID:        user.ID,
			InitialAmount: initialAmount,
			MerchantType:  user.MerchantType,
		})
		if err != nil {
			zap.L().Error("can't create account: ", zap.Error(err))
			return err
		}

		return s.summaryRepo.Upsert(ctx, &domain.SummaryEntry{
			UserID:        user.ID,
			AccountID:     account.ID,
			CurrentAmount: account.CurrentAmount,
			MerchantType:  account.MerchantType,
		})
	})
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("account successfully created", zap.Int64("userID", user.ID), zap.Int64("accountID", account.ID))
	return user, account, nil
}

func (s *Service) GetUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch user accounts", zap.Error(err))
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrUserNotFound
	}
	return accounts, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID int64) (*domain.Account, []domain.Withdrawal, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch account", zap.Error(err))
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, ErrAccountNotFound
	}

	withdrawals, err := s.withdrawalRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, nil, err
	}

	return account, withdrawals, nil
}
