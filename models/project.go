package models

import "time"

const (
	ProjectStatusActive   = "active"
	ProjectStatusPaused   = "paused"
	ProjectStatusArchived = "archived"
)

// Project is an investable offering with fixed ROI terms for the 4-month and
// 12-month durations. The investment workflow only ever reads it.
type Project struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Slug           string     `gorm:"size:191;uniqueIndex;not null" json:"slug"`
	Title          string     `gorm:"size:191;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	MinInvestment  float64    `gorm:"type:decimal(15,2);default:10000" json:"min_investment"`
	ROI4moPercent  float64    `gorm:"column:roi_4mo_percent;type:decimal(7,2)" json:"roi_4mo_percent"`
	ROI12moPercent float64    `gorm:"column:roi_12mo_percent;type:decimal(7,2)" json:"roi_12mo_percent"`
	DurationMonths int        `gorm:"default:4" json:"duration_months"`
	Currency       string     `gorm:"size:8;default:'NGN'" json:"currency"`
	Status         string     `gorm:"type:enum('active','paused','archived');default:'active'" json:"status"`
	Images         StringList `gorm:"type:json" json:"images"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
