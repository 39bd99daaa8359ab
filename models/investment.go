package models

import "time"

const (
	InvestmentStatusActive     = "active"
	InvestmentStatusMatured    = "matured"
	InvestmentStatusWithdrawn  = "withdrawn"
	InvestmentStatusReinvested = "reinvested"
)

// Investment is a user's capital commitment to a project. ROIPercent and
// ExpectedPayout are locked in at creation time and never recomputed; the
// Transactions column is a denormalized back-reference index of canonical
// transaction ids, the source of truth being transactions.investment_id.
type Investment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	ProjectID      uint      `gorm:"not null;index" json:"project_id"`
	Amount         float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency       string    `gorm:"size:8;default:'NGN'" json:"currency"`
	StartDate      time.Time `json:"start_date"`
	MaturityDate   time.Time `json:"maturity_date"`
	ROIPercent     float64   `gorm:"column:roi_percent;type:decimal(7,2);not null" json:"roi_percent"`
	ExpectedPayout float64   `gorm:"type:decimal(15,2)" json:"expected_payout"`
	Status         string    `gorm:"type:enum('active','matured','withdrawn','reinvested');default:'active'" json:"status"`
	PaymentRef     *string   `gorm:"size:191" json:"payment_ref"`
	Transactions   IDList    `gorm:"type:json" json:"transactions"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Filled by the batched project lookup on list/get, never persisted.
	Project *Project `gorm:"-" json:"project,omitempty"`
}

func (Investment) TableName() string {
	return "investments"
}
