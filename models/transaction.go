package models

import "time"

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeROICredit  = "roi_credit"
	TransactionTypeFee        = "fee"

	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction is a financial movement linked to exactly one investment.
type Transaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	InvestmentID uint      `gorm:"not null;index" json:"investment_id"`
	Type         string    `gorm:"type:enum('deposit','withdrawal','roi_credit','fee');not null" json:"type"`
	Amount       float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status       string    `gorm:"type:enum('pending','success','failed');default:'pending'" json:"status"`
	Provider     *string   `gorm:"size:64" json:"provider"`
	ProviderRef  *string   `gorm:"size:191" json:"provider_ref"`
	Meta         JSONMap   `gorm:"type:json" json:"meta,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ValidTransactionType reports whether t is one of the supported movement
// kinds.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeROICredit, TransactionTypeFee:
		return true
	}
	return false
}
