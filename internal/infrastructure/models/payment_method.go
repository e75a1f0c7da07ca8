package models

import (
	"time"
)

type PaymentMethod struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Type      string `gorm:"type:varchar(16);not null"`
	Details   string `gorm:"type:jsonb;not null"`
	IsDefault bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}
