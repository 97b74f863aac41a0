package funds

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/dto"
	"github.com/marketsmojo/accounts/internal/service/fundsservice"
	"github.com/marketsmojo/accounts/pkg/utils"
)

type Service interface {
	Withdraw(ctx context.Context, accountID, amount int64) (*domain.Account, *domain.User, []domain.Withdrawal, error)
	CashIncrement(ctx context.Context, accountID, amount int64) (*domain.Account, []domain.SummaryEntry, error)
}

type FundsHandler struct {
	fundsService Service
}

func New(fundsService Service) *FundsHandler {
	return &FundsHandler{
		fundsService: fundsService,
	}
}

// Withdraw godoc
//
//	@Summary		Withdraw funds from an account
//	@Description	Debit the account and append an entry to its withdrawal ledger.
//	@Tags			Средства
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.WithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or insufficient funds"
//	@Failure		404		{object}	utils.Response	"Account or user not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/withdrawal [post]
func (h *FundsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.WithdrawalAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "withdrawal_amount must be positive")
		return
	}

	account, user, withdrawals, err := h.fundsService.Withdraw(r.Context(), req.AccountID, req.WithdrawalAmount)
	if err != nil {
		switch {
		case errors.Is(err, fundsservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, fundsservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, fundsservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient funds")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.WithdrawResponseDTO{
		Message:       "Withdrawal successful",
		UserID:        user.ID,
		UserName:      user.Name,
		CurrentAmount: account.CurrentAmount,
		Withdrawals:   make([]dto.WithdrawalDTO, len(withdrawals)),
	}
	for i, wd := range withdrawals {
		response.Withdrawals[i] = dto.WithdrawalDTO{
			Amount: wd.Amount,
			Date:   wd.Date,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CashIncrement godoc
//
//	@Summary		Credit funds to an account
//	@Description	Increase the account balance and return all account balances of the owner.
//	@Tags			Средства
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CashIncRequestDTO	true	"Cash increment payload"
//	@Success		200		{object}	dto.CashIncResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/cash_inc [post]
func (h *FundsHandler) CashIncrement(w http.ResponseWriter, r *http.Request) {
	var req dto.CashIncRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.IncrementAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "increment_amount must be positive")
		return
	}

	account, entries, err := h.fundsService.CashIncrement(r.Context(), req.AccountID, req.IncrementAmount)
	if err != nil {
		switch {
		case errors.Is(err, fundsservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.CashIncResponseDTO{
		Message:       "Cash increment successful",
		CurrentAmount: account.CurrentAmount,
		Accounts:      make([]dto.SummaryEntryDTO, len(entries)),
	}
	for i, entry := range entries {
		response.Accounts[i] = dto.SummaryEntryDTO{
			AccountID:     entry.AccountID,
			CurrentAmount: entry.CurrentAmount,
			MerchantType:  string(entry.MerchantType),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
