package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/marketsmojo/accounts/docs"
	accountshandlers "github.com/marketsmojo/accounts/internal/handlers/accounts"
	fundshandlers "github.com/marketsmojo/accounts/internal/handlers/funds"
	"github.com/marketsmojo/accounts/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AccountHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetUserInfo(w http.ResponseWriter, r *http.Request)
	GetAccountInfo(w http.ResponseWriter, r *http.Request)
}

type FundsHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	CashIncrement(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler AccountHandler
	FundsHandler   FundsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AccountHandler: accountshandlers.New(s.AccountService),
		FundsHandler:   fundshandlers.New(s.FundsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", h.AccountHandler.Home)
	r.Post("/create", h.AccountHandler.Create)
	r.Route("/info", func(r chi.Router) {
		r.Get("/user/{userID}", h.AccountHandler.GetUserInfo)
		r.Get("/account/{accountID}", h.AccountHandler.GetAccountInfo)
	})
	r.Post("/withdrawal", h.FundsHandler.Withdraw)
	r.Post("/cash_inc", h.FundsHandler.CashIncrement)

	return r
}
