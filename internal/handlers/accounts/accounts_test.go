package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/dto"
	accountservice "github.com/marketsmojo/accounts/internal/service/accountservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHomeHandler(t *testing.T) {
	handler, _ := NewMock(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.Home(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Markets MOJO")
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"user_name":"Alice","age":30,"merchant_type":"individual","initial_amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), &domain.User{
						Name:         "Alice",
						Age:          30,
						MerchantType: domain.MerchantTypeIndividual,
					}, int64(1000)).
					Return(
						&domain.User{ID: 1001, Name: "Alice"},
						&domain.Account{ID: 100001, UserID: 1001, CurrentAmount: 1000},
						nil,
					)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"user_name":"Alice","initial_amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing user name",
			body:          `{"merchant_type":"individual","initial_amount":1000}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "user_name is required",
		},
		{
			name:          "Invalid merchant type",
			body:          `{"user_name":"Alice","merchant_type":"pawnbroker","initial_amount":1000}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid merchant_type",
		},
		{
			name:          "Negative initial amount",
			body:          `{"user_name":"Alice","merchant_type":"individual","initial_amount":-5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "initial_amount must not be negative",
		},
		{
			name: "Internal server error",
			body: `{"user_name":"Alice","merchant_type":"individual","initial_amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), int64(1000)).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/create", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.CreateAccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(1001), body.UserID)
				assert.Equal(t, int64(100001), body.AccountID)
			}
		})
	}
}

func TestGetUserInfoHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name:   "Successful retrieval",
			userID: "1001",
			prepareMock: func() {
				service.EXPECT().
					GetUserAccounts(gomock.Any(), int64(1001)).
					Return([]domain.Account{
						{ID: 100001, UserID: 1001, InitialAmount: 1000, CurrentAmount: 700},
						{ID: 100002, UserID: 1001, InitialAmount: 500, CurrentAmount: 500},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:          "Invalid user ID",
			userID:        "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid user ID",
		},
		{
			name:   "User not found",
			userID: "9999",
			prepareMock: func() {
				service.EXPECT().
					GetUserAccounts(gomock.Any(), int64(9999)).
					Return(nil, accountservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name:   "Internal server error",
			userID: "1001",
			prepareMock: func() {
				service.EXPECT().
					GetUserAccounts(gomock.Any(), int64(1001)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/info/user/"+tt.userID, nil)
			r = withURLParam(r, "userID", tt.userID)
			w := httptest.NewRecorder()

			handler.GetUserInfo(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.AccountDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetAccountInfoHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful retrieval",
			accountID: "100001",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(100001)).
					Return(
						&domain.Account{ID: 100001, UserID: 1001, InitialAmount: 1000, CurrentAmount: 700},
						[]domain.Withdrawal{{ID: 1, AccountID: 100001, Amount: 300}},
						nil,
					)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid account ID",
			accountID:     "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid account ID",
		},
		{
			name:      "Account not found",
			accountID: "999999",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(999999)).
					Return(nil, nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Account not found",
		},
		{
			name:      "Internal server error",
			accountID: "100001",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(100001)).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/info/account/"+tt.accountID, nil)
			r = withURLParam(r, "accountID", tt.accountID)
			w := httptest.NewRecorder()

			handler.GetAccountInfo(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AccountInfoResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(100001), body.Account.AccountID)
				assert.Len(t, body.Withdrawals, 1)
			}
		})
	}
}
