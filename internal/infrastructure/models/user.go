package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string `gorm:"type:varchar(20);not null"`
	Role         string `gorm:"type:varchar(16);not null;default:USER"`
	CreatedAt    time.Time
}
