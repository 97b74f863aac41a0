package fundsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/pg"
	"github.com/marketsmojo/accounts/internal/service/accountservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *accountservice.MockUserRepo, *accountservice.MockAccountRepo, *accountservice.MockWithdrawalRepo, *accountservice.MockSummaryRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := accountservice.NewMockUserRepo(ctrl)
	accountRepo := accountservice.NewMockAccountRepo(ctrl)
	withdrawalRepo := accountservice.NewMockWithdrawalRepo(ctrl)
	summaryRepo := accountservice.NewMockSummaryRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(userRepo, accountRepo, withdrawalRepo, summaryRepo, txManager)
	defer ctrl.Finish()
	return service, userRepo, accountRepo, withdrawalRepo, summaryRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestWithdraw(t *testing.T) {
	service, userRepo, accountRepo, withdrawalRepo, summaryRepo, txManager := NewMock(t)

	locked := &domain.Account{
		ID:            100001,
		UserID:        1001,
		InitialAmount: 1000,
		CurrentAmount: 1000,
		MerchantType:  domain.MerchantTypeIndividual,
	}
	owner := &domain.User{ID: 1001, Name: "Alice"}

	tests := []struct {
		name            string
		accountID       int64
		amount          int64
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name:      "Successful withdrawal",
			accountID: 100001,
			amount:    300,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(100001)).Return(locked, nil)
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1001)).Return(owner, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.Equal(t, int64(100001), w.AccountID)
						assert.Equal(t, int64(300), w.Amount)
						w.ID = 1
						return w, nil
					})
				accountRepo.EXPECT().UpdateBalance(gomock.Any(), int64(100001), int64(700)).Return(&domain.Account{
					ID: 100001, UserID: 1001, InitialAmount: 1000, CurrentAmount: 700, MerchantType: domain.MerchantTypeIndividual,
				}, nil)
				summaryRepo.EXPECT().Upsert(gomock.Any(), &domain.SummaryEntry{
					UserID: 1001, AccountID: 100001, CurrentAmount: 700, MerchantType: domain.MerchantTypeIndividual,
				}).Return(nil)
				withdrawalRepo.EXPECT().GetByAccountID(gomock.Any(), int64(100001)).Return([]domain.Withdrawal{
					{ID: 1, AccountID: 100001, Amount: 300},
				}, nil)
			},
			expectedBalance: 700,
		},
		{
			name:      "Insufficient funds leaves balance untouched",
			accountID: 100001,
			amount:    5000,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(100001)).Return(locked, nil)
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1001)).Return(owner, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:      "Account not found",
			accountID: 999999,
			amount:    100,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(999999)).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:      "Account owner missing",
			accountID: 100001,
			amount:    100,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(100001)).Return(locked, nil)
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1001)).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:      "Error locking account",
			accountID: 100001,
			amount:    100,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(100001)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, user, withdrawals, err := service.Withdraw(context.Background(), tt.accountID, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, account.CurrentAmount)
				assert.Equal(t, owner.ID, user.ID)
				assert.Len(t, withdrawals, 1)
			}
		})
	}
}

func TestCashIncrement(t *testing.T) {
	service, _, accountRepo, _, summaryRepo, txManager := NewMock(t)

	locked := &domain.Account{
		ID:            100001,
		UserID:        1001,
		InitialAmount: 1000,
		CurrentAmount: 700,
		MerchantType:  domain.MerchantTypeIndividual,
	}

	tests := []struct {
		name            string
		accountID       int64
		amount          int64
		prepareMock     func()
		expectedBalance int64
		expectedEntries int
		expectedError   error
	}{
		{
			name:      "Successful cash increment",
			accountID: 100001,
			amount:    500,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(100001)).Return(locked, nil)
				accountRepo.EXPECT().UpdateBalance(gomock.Any(), int64(100001), int64(1200)).Return(&domain.Account{
					ID: 100001, UserID: 1001, InitialAmount: 1000, CurrentAmount: 1200, MerchantType: domain.MerchantTypeIndividual,
				}, nil)
				summaryRepo.EXPECT().Upsert(gomock.Any(), &domain.SummaryEntry{
					UserID: 1001, AccountID: 100001, CurrentAmount: 1200, MerchantType: domain.MerchantTypeIndividual,
				}).Return(nil)
				summaryRepo.EXPECT().GetByUserID(gomock.Any(), int64(1001)).Return([]domain.SummaryEntry{
					{UserID: 1001, AccountID: 100001, CurrentAmount: 1200, MerchantType: domain.MerchantTypeIndividual},
					{UserID: 1001, AccountID: 100002, CurrentAmount: 500, MerchantType: domain.MerchantTypeIndividual},
				}, nil)
			},
			expectedBalance: 1200,
			expectedEntries: 2,
		},
		{
			name:      "Account not found",
			accountID: 999999,
			amount:    500,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(999999)).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:      "Error updating balance",
			accountID: 100001,
			amount:    500,
			prepareMock: func() {
				passthroughTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(100001)).Return(locked, nil)
				accountRepo.EXPECT().UpdateBalance(gomock.Any(), int64(100001), int64(1200)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, entries, err := service.CashIncrement(context.Background(), tt.accountID, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, account.CurrentAmount)
				assert.Len(t, entries, tt.expectedEntries)
			}
		})
	}
}
