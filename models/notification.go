package models

import "time"

type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Type      string     `gorm:"size:64" json:"type"`
	Title     string     `gorm:"size:191" json:"title"`
	Body      string     `gorm:"type:text" json:"body"`
	Read      bool       `gorm:"default:false" json:"read"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
