package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/marketsmojo/accounts/docs"
	"github.com/marketsmojo/accounts/internal/handlers/accounts"
	"github.com/marketsmojo/accounts/internal/handlers/funds"
	"github.com/marketsmojo/accounts/internal/service"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AccountService: accounts.NewMockService(ctrl),
		FundsService:   funds.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountHandler := NewMockAccountHandler(ctrl)
	mockFundsHandler := NewMockFundsHandler(ctrl)

	mockAccountHandler.EXPECT().Home(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetUserInfo(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetAccountInfo(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundsHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundsHandler.EXPECT().CashIncrement(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AccountHandler: mockAccountHandler,
		FundsHandler:   mockFundsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/", http.StatusOK},
		{"POST", "/create", http.StatusOK},
		{"GET", "/info/user/1001", http.StatusOK},
		{"GET", "/info/account/100001", http.StatusOK},
		{"POST", "/withdrawal", http.StatusOK},
		{"POST", "/cash_inc", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
