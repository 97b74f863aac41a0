package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, initial_amount, current_amount, merchant_type)
		VALUES ($1, $2, $2, $3)
		RETURNING account_id, current_amount, date_of_creation
	`
	err := r.db.QueryRow(ctx, query, account.UserID, account.InitialAmount, account.MerchantType).
		Scan(&account.ID, &account.CurrentAmount, &account.DateOfCreation)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) GetByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, initial_amount, current_amount, merchant_type, date_of_creation
		FROM accounts
		WHERE account_id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, accountID))
}

// GetForUpdate locks the account row for the rest of the transaction. Both
// balance mutations go through it so concurrent requests against the same
// account are serialized and the balance check cannot be raced past.
func (r *Repository) GetForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, initial_amount, current_amount, merchant_type, date_of_creation
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`
	return r.scanOne(r.db.QueryRow(ctx, query, accountID))
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	query := `
		SELECT account_id, user_id, initial_amount, current_amount, merchant_type, date_of_creation
		FROM accounts
		WHERE user_id = $1
		ORDER BY account_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch user accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		err := rows.Scan(&acc.ID, &acc.UserID, &acc.InitialAmount, &acc.CurrentAmount, &acc.MerchantType, &acc.DateOfCreation)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID, newAmount int64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET current_amount = $1
		WHERE account_id = $2
		RETURNING account_id, user_id, initial_amount, current_amount, merchant_type, date_of_creation
	`
	return r.scanOne(r.db.QueryRow(ctx, query, newAmount, accountID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.UserID, &acc.InitialAmount, &acc.CurrentAmount, &acc.MerchantType, &acc.DateOfCreation)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scan account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}
