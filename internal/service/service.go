package service

import (
	"github.com/marketsmojo/accounts/internal/handlers/accounts"
	"github.com/marketsmojo/accounts/internal/handlers/funds"
	"github.com/marketsmojo/accounts/internal/pg"
	"github.com/marketsmojo/accounts/internal/repo"
	"github.com/marketsmojo/accounts/internal/service/accountservice"
	"github.com/marketsmojo/accounts/internal/service/fundsservice"
)

type Services struct {
	AccountService accounts.Service
	FundsService   funds.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	accountService := accountservice.New(repo.UserRepo, repo.AccountRepo, repo.WithdrawalRepo, repo.SummaryRepo, txManager)
	fundsService := fundsservice.New(repo.UserRepo, repo.AccountRepo, repo.WithdrawalRepo, repo.SummaryRepo, txManager)

	return &Services{
		AccountService: accountService,
		FundsService:   fundsService,
	}
}
