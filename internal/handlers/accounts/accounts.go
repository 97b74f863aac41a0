package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/dto"
	"github.com/marketsmojo/accounts/internal/service/accountservice"
	"github.com/marketsmojo/accounts/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, user *domain.User, initialAmount int64) (*domain.User, *domain.Account, error)
	GetUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, []domain.Withdrawal, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Home godoc
//
//	@Summary		Welcome message
//	@Tags			Общее
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Welcome message"
//	@Router			/ [get]
func (h *AccountHandler) Home(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Welcome to the Markets MOJO"})
}

// Create godoc
//
//	@Summary		Create a user account
//	@Description	Create a new account with an opening balance. A case-insensitive match on user_name reuses the existing user.
//	@Tags			Счета
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Account creation payload"
//	@Success		201		{object}	dto.CreateAccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/create [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user_name is required")
		return
	}
	merchantType := domain.MerchantType(req.MerchantType)
	if !merchantType.IsValid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid merchant_type")
		return
	}
	if req.InitialAmount < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "initial_amount must not be negative")
		return
	}

	user, account, err := h.accountService.Create(r.Context(), &domain.User{
		Name:          req.UserName,
		Age:           req.Age,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		MerchantType:  merchantType,
	}, req.InitialAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateAccountResponseDTO{
		Message:   "Account successfully created",
		UserID:    user.ID,
		AccountID: account.ID,
		UserName:  user.Name,
	})
}

// GetUserInfo godoc
//
//	@Summary		List accounts of a user
//	@Tags			Счета
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.AccountDTO
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/info/user/{userID} [get]
func (h *AccountHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	accounts, err := h.accountService.GetUserAccounts(r.Context(), userID)
	if err != nil {
		if errors.Is(err, accountservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AccountDTO, len(accounts))
	for i, acc := range accounts {
		response[i] = toAccountDTO(acc)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAccountInfo godoc
//
//	@Summary		Get an account with its withdrawal ledger
//	@Tags			Счета
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	dto.AccountInfoResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid account ID"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/info/account/{accountID} [get]
func (h *AccountHandler) GetAccountInfo(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, withdrawals, err := h.accountService.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AccountInfoResponseDTO{
		Account:     toAccountDTO(*account),
		Withdrawals: make([]dto.WithdrawalDTO, len(withdrawals)),
	}
	for i, wd := range withdrawals {
		response.Withdrawals[i] = dto.WithdrawalDTO{
			Amount: wd.Amount,
			Date:   wd.Date,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toAccountDTO(acc domain.Account) dto.AccountDTO {
	return dto.AccountDTO{
		AccountID:      acc.ID,
		UserID:         acc.UserID,
		InitialAmount:  acc.InitialAmount,
		CurrentAmount:  acc.CurrentAmount,
		MerchantType:   string(acc.MerchantType),
		DateOfCreation: acc.DateOfCreation,
	}
}
