package dto

import "time"

type CreateAccountRequestDTO struct {
	UserName      string `json:"user_name" example:"Alice"`
	Age           int    `json:"age" example:"30"`
	Email         string `json:"email" example:"alice@example.com"`
	ContactNumber string `json:"contact_number" example:"+79990001122"`
	MerchantType  string `json:"merchant_type" example:"individual"`
	InitialAmount int64  `json:"initial_amount" example:"1000"`
}

type CreateAccountResponseDTO struct {
	Message   string `json:"message" example:"Account successfully created"`
	UserID    int64  `json:"user_id" example:"1001"`
	AccountID int64  `json:"account_id" example:"100001"`
	UserName  string `json:"user_name" example:"Alice"`
}

type AccountDTO struct {
	AccountID      int64     `json:"account_id" example:"100001"`
	UserID         int64     `json:"user_id" example:"1001"`
	InitialAmount  int64     `json:"initial_amount" example:"1000"`
	CurrentAmount  int64     `json:"current_amount" example:"800"`
	MerchantType   string    `json:"merchant_type" example:"individual"`
	DateOfCreation time.Time `json:"date_of_creation" example:"2024-11-02T16:09:57+03:00"`
}

type AccountInfoResponseDTO struct {
	Account     AccountDTO      `json:"account"`
	Withdrawals []WithdrawalDTO `json:"withdrawals"`
}
