package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func()
		expectErr  bool
	}{
		{
			name: "Successfully creates withdrawal",
			withdrawal: &domain.Withdrawal{
				AccountID: 100001,
				Amount:    200,
				Date:      now,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(1))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawals (account_id, amount, date) VALUES ($1, $2, $3) RETURNING id`)).
					WithArgs(int64(100001), int64(200), now).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			withdrawal: &domain.Withdrawal{
				AccountID: 100001,
				Amount:    200,
				Date:      now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawals (account_id, amount, date) VALUES ($1, $2, $3) RETURNING id`)).
					WithArgs(int64(100001), int64(200), now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.withdrawal)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), result.ID)
			}
		})
	}
}

func TestRepository_GetByAccountID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID int64
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name:      "Account with one withdrawal",
			accountID: 100001,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "amount", "date"}).
					AddRow(int64(1), int64(100001), int64(200), now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, amount, date FROM withdrawals WHERE account_id = $1 ORDER BY date`)).
					WithArgs(int64(100001)).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected:  1,
		},
		{
			name:      "Account with no withdrawals",
			accountID: 100002,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "amount", "date"})
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, amount, date FROM withdrawals WHERE account_id = $1 ORDER BY date`)).
					WithArgs(int64(100002)).
					WillReturnRows(rows)
			},
			expectErr: false,
			expected:  0,
		},
		{
			name:      "Database error",
			accountID: 100001,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, amount, date FROM withdrawals WHERE account_id = $1 ORDER BY date`)).
					WithArgs(int64(100001)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByAccountID(context.Background(), tt.accountID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.expected)
		})
	}
}
