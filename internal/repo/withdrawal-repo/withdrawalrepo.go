package withdrawalrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (account_id, amount, date)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, withdrawal.AccountID, withdrawal.Amount, withdrawal.Date).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, account_id, amount, date
        FROM withdrawals
        WHERE account_id = $1
        ORDER BY date
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.AccountID, &wd.Amount, &wd.Date)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}
