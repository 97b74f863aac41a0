package fundsservice

import (
	"context"
	"errors"
	"time"

	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/pg"
	"github.com/marketsmojo/accounts/internal/service/accountservice"
	"go.uber.org/zap"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type Service struct {
	userRepo       accountservice.UserRepo
	accountRepo    accountservice.AccountRepo
	withdrawalRepo accountservice.WithdrawalRepo
	summaryRepo    accountservice.SummaryRepo
	txManager      pg.TXManager
}

func New(userRepo accountservice.UserRepo, accountRepo accountservice.AccountRepo, withdrawalRepo accountservice.WithdrawalRepo, summaryRepo accountservice.SummaryRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		summaryRepo:    summaryRepo,
		txManager:      txManager,
	}
}

// Withdraw debits the account and appends a ledger entry. The account row is
// locked for the duration of the transaction, so two concurrent withdrawals
// cannot both pass the balance check.
func (s *Service) Withdraw(ctx context.Context, accountID, amount int64) (*domain.Account, *domain.User, []domain.Withdrawal, error) {
	var (
		account     *domain.Account
		user        *domain.User
		withdrawals []domain.Withdrawal
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			zap.L().Error("failed to fetch account", zap.Error(err))
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		user, err = s.userRepo.GetByID(ctx, account.UserID)
		if err != nil {
			zap.L().Error("failed to fetch account owner", zap.Error(err))
			return err
		}
		if user == nil {
			zap.L().Error("account references missing user", zap.Int64("accountID", accountID), zap.Int64("userID", account.UserID))
			return ErrUserNotFound
		}

		if amount > account.CurrentAmount {
			return ErrInsufficientFunds
		}

		if _, err = s.withdrawalRepo.Create(ctx, &domain.Withdrawal{
			AccountID: accountID,
			Amount:    amount,
			Date:      time.Now(),
		}); err != nil {
			zap.L().Error("failed to create withdrawal record", zap.Error(err))
			return err
		}

		account, err = s.accountRepo.UpdateBalance(ctx, accountID, account.CurrentAmount-amount)
		if err != nil {
			zap.L().Error("failed to update account balance", zap.Error(err))
			return err
		}

		if err = s.summaryRepo.Upsert(ctx, &domain.SummaryEntry{
			UserID:        account.UserID,
			AccountID:     account.ID,
			CurrentAmount: account.CurrentAmount,
			MerchantType:  account.MerchantType,
		}); err != nil {
			zap.L().Error("failed to update summary entry", zap.Error(err))
			return err
		}

		withdrawals, err = s.withdrawalRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			zap.L().Error("failed to fetch withdrawals", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}

	zap.L().Info("withdrawal successful", zap.Int64("accountID", accountID), zap.Int64("amount", amount), zap.Int64("balance", account.CurrentAmount))
	return account, user, withdrawals, nil
}

// CashIncrement credits the account and refreshes the owner's summary
// projection in the same transaction. A missing projection row is initialized
// from the authoritative account row rather than treated as an error.
func (s *Service) CashIncrement(ctx context.Context, accountID, amount int64) (*domain.Account, []domain.SummaryEntry, error) {
	var (
		account *domain.Account
		entries []domain.SummaryEntry
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			zap.L().Error("failed to fetch account", zap.Error(err))
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		account, err = s.accountRepo.UpdateBalance(ctx, accountID, account.CurrentAmount+amount)
		if err != nil {
			zap.L().Error("failed to update account balance", zap.Error(err))
			return err
		}

		if err = s.summaryRepo.Upsert(ctx, &domain.SummaryEntry{
			UserID:        account.UserID,
			AccountID:     account.ID,
			CurrentAmount: account.CurrentAmount,
			MerchantType:  account.MerchantType,
		}); err != nil {
			zap.L().Error("failed to update summary entry", zap.Error(err))
			return err
		}

		entries, err = s.summaryRepo.GetByUserID(ctx, account.UserID)
		if err != nil {
			zap.L().Error("failed to fetch summary entries", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("cash increment successful", zap.Int64("accountID", accountID), zap.Int64("amount", amount), zap.Int64("balance", account.CurrentAmount))
	return account, entries, nil
}
