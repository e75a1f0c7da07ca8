package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelPrice represents a station's price for one fuel type
type FuelPrice struct {
	ID            uint            `json:"id"`
	StationID     uint            `json:"stationId"`
	FuelType      FuelType        `json:"fuelType"`
	Price         decimal.Decimal `json:"price"`
	EffectiveDate time.Time       `json:"effectiveDate"`
}

// CreateFuelPriceInput represents input for publishing a price
type CreateFuelPriceInput struct {
	FuelType      string    `json:"fuelType" binding:"required,oneof=petrol diesel cng"`
	Price         string    `json:"price" binding:"required"`
	EffectiveDate time.Time `json:"effectiveDate" binding:"required"`
}
