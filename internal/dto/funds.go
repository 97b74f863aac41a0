package dto

import "time"

type WithdrawalDTO struct {
	Amount int64     `json:"amount" example:"200"`
	Date   time.Time `json:"date" example:"2024-11-02T16:09:57+03:00"`
}

type WithdrawRequestDTO struct {
	AccountID        int64 `json:"account_id" example:"100001"`
	WithdrawalAmount int64 `json:"withdrawal_amount" example:"200"`
}

type WithdrawResponseDTO struct {
	Message       string          `json:"message" example:"Withdrawal successful"`
	UserID        int64           `json:"user_id" example:"1001"`
	UserName      string          `json:"user_name" example:"Alice"`
	CurrentAmount int64           `json:"current_amount" example:"800"`
	Withdrawals   []WithdrawalDTO `json:"withdrawals"`
}

type CashIncRequestDTO struct {
	AccountID       int64 `json:"account_id" example:"100002"`
	IncrementAmount int64 `json:"increment_amount" example:"300"`
}

type SummaryEntryDTO struct {
	AccountID     int64  `json:"account_id" example:"100001"`
	CurrentAmount int64  `json:"current_amount" example:"800"`
	MerchantType  string `json:"merchant_type" example:"individual"`
}

type CashIncResponseDTO struct {
	Message       string            `json:"message" example:"Cash increment successful"`
	CurrentAmount int64             `json:"current_amount" example:"800"`
	Accounts      []SummaryEntryDTO `json:"accounts"`
}
