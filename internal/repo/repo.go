package repo

import (
	"github.com/marketsmojo/accounts/internal/pg"
	accountrepo "github.com/marketsmojo/accounts/internal/repo/account-repo"
	summaryrepo "github.com/marketsmojo/accounts/internal/repo/summary-repo"
	userrepo "github.com/marketsmojo/accounts/internal/repo/user-repo"
	withdrawalrepo "github.com/marketsmojo/accounts/internal/repo/withdrawal-repo"
	"github.com/marketsmojo/accounts/internal/service/accountservice"
)

type Repositories struct {
	UserRepo       accountservice.UserRepo
	AccountRepo    accountservice.AccountRepo
	WithdrawalRepo accountservice.WithdrawalRepo
	SummaryRepo    accountservice.SummaryRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	accountRepo := accountrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)
	summaryRepo := summaryrepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		AccountRepo:    accountRepo,
		WithdrawalRepo: withdrawalRepo,
		SummaryRepo:    summaryRepo,
	}
}
