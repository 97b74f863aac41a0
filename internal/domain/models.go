package domain

import "time"

type MerchantType string

const (
	MerchantTypeIndividual   MerchantType = "individual"
	MerchantTypeBusiness     MerchantType = "business"
	MerchantTypeOrganization MerchantType = "organization"
	MerchantTypeOthers       MerchantType = "others"
)

func (m MerchantType) IsValid() bool {
	switch m {
	case MerchantTypeIndividual, MerchantTypeBusiness, MerchantTypeOrganization, MerchantTypeOthers:
		return true
	}
	return false
}

type User struct {
	ID            int64        `db:"user_id"`
	Name          string       `db:"user_name"`
	Age           int          `db:"age"`
	Email         string       `db:"email"`
	ContactNumber string       `db:"contact_number"`
	MerchantType  MerchantType `db:"merchant_type"`
	CreatedAt     time.Time    `db:"created_at"`
}

type Account struct {
	ID             int64        `db:"account_id"`
	UserID         int64        `db:"user_id"`
	InitialAmount  int64        `db:"initial_amount"`
	CurrentAmount  int64        `db:"current_amount"`
	MerchantType   MerchantType `db:"merchant_type"`
	DateOfCreation time.Time    `db:"date_of_creation"`
}

type Withdrawal struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"account_id"`
	Amount    int64     `db:"amount"`
	Date      time.Time `db:"date"`
}

// SummaryEntry is one row of the per-user account summary projection. The
// authoritative balance lives on Account; the projection is kept in step with
// it inside the same transaction on every mutation.
type SummaryEntry struct {
	UserID        int64        `db:"user_id"`
	AccountID     int64        `db:"account_id"`
	CurrentAmount int64        `db:"current_amount"`
	MerchantType  MerchantType `db:"merchant_type"`
}
