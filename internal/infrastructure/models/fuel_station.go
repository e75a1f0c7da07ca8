package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FuelStation struct {
	ID               uint            `gorm:"primaryKey"`
	Name             string          `gorm:"type:varchar(100);not null"`
	Address          string          `gorm:"type:varchar(255);not null"`
	City             string          `gorm:"type:varchar(64);not null;index"`
	Latitude         decimal.Decimal `gorm:"type:decimal(10,6);not null"`
	Longitude        decimal.Decimal `gorm:"type:decimal(10,6);not null"`
	HasRFID          bool            `gorm:"not null;default:false"`
	OperationalHours string          `gorm:"type:varchar(64);not null"`
	Rating           decimal.Decimal `gorm:"type:decimal(3,1);not null"`
	CreatedAt        time.Time
}

type FuelPrice struct {
	ID            uint            `gorm:"primaryKey"`
	StationID     uint            `gorm:"not null;index"`
	FuelType      string          `gorm:"type:varchar(16);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	EffectiveDate time.Time       `gorm:"not null"`

	Station FuelStation `gorm:"foreignKey:StationID;references:ID"`
}
