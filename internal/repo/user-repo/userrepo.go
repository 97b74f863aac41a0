package userrepo

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

// FindByName matches user names case-insensitively, so "alice" resolves to an
// existing "Alice" record instead of creating a duplicate.
func (repo *Repository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	query := `
		SELECT user_id, user_name, age, email, contact_number, merchant_type, created_at
		FROM users
		WHERE LOWER(user_name) = LOWER($1)
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, name).
		Scan(&user.ID, &user.Name, &user.Age, &user.Email, &user.ContactNumber, &user.MerchantType, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by name", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT user_id, user_name, age, email, contact_number, merchant_type, created_at
		FROM users
		WHERE user_id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Name, &user.Age, &user.Email, &user.ContactNumber, &user.MerchantType, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (user_name, age, email, contact_number, merchant_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Age, user.Email, user.ContactNumber, user.MerchantType).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
