package models

import (
	"time"
)

type Vehicle struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             uint   `gorm:"not null;index"`
	Make               string `gorm:"type:varchar(64);not null"`
	Model              string `gorm:"type:varchar(64);not null"`
	RegistrationNumber string `gorm:"type:varchar(32);not null;uniqueIndex"`
	FuelType           string `gorm:"type:varchar(16);not null"`
	CreatedAt          time.Time

	User User `gorm:"foreignKey:UserID;references:ID"`
}
