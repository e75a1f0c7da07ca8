package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type Transaction struct {
	ID              uint            `gorm:"primaryKey"`
	TransactionID   string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	UserID          uint            `gorm:"not null;index"`
	VehicleID       null.Uint       `gorm:"index"`
	StationID       null.Uint       `gorm:"index"`
	FuelType        string          `gorm:"type:varchar(16);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	PricePerUnit    decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethodID null.Uint
	PaymentType     string    `gorm:"type:varchar(16);not null"`
	Status          string    `gorm:"type:varchar(16);not null"`
	Timestamp       time.Time `gorm:"not null;index"`
}
