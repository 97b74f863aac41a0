package summaryrepo

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

// Upsert writes the projection row for one account, creating it if missing.
// Callers run it in the same transaction as the account write so the
// projection never observably diverges from the authoritative balance.
func (r *Repository) Upsert(ctx context.Context, entry *domain.SummaryEntry) error {
	query := `
		INSERT INTO account_summaries (account_id, user_id, current_amount, merchant_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id)
		DO UPDATE SET current_amount = EXCLUDED.current_amount
	`
	_, err := r.db.Exec(ctx, query, entry.AccountID, entry.UserID, entry.CurrentAmount, entry.MerchantType)
	if err != nil {
		zap.L().Error("can't upsert summary entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]domain.SummaryEntry, error) {
	query := `
        SELECT user_id, account_id, current_amount, merchant_type
        FROM account_summaries
        WHERE user_id = $1
        ORDER BY account_id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch summary entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SummaryEntry
	for rows.Next() {
		var entry domain.SummaryEntry
		err := rows.Scan(&entry.UserID, &entry.AccountID, &entry.CurrentAmount, &entry.MerchantType)
		if err != nil {
			zap.L().Error("failed to scan summary row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// FindDrift returns accounts whose projection row is missing or disagrees with
// the account balance. Used by the background reconciler.
func (r *Repository) FindDrift(ctx context.Context, limit int) ([]domain.Account, error) {
	query := `
        SELECT a.account_id, a.user_id, a.initial_amount, a.current_amount, a.merchant_type, a.date_of_creation
        FROM accounts a
        LEFT JOIN account_summaries s ON s.account_id = a.account_id
        WHERE s.account_id IS NULL OR s.current_amount <> a.current_amount
        ORDER BY a.account_id
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch drifted accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		err := rows.Scan(&acc.ID, &acc.UserID, &acc.InitialAmount, &acc.CurrentAmount, &acc.MerchantType, &acc.DateOfCreation)
		if err != nil {
			zap.L().Error("failed to scan drifted account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}
