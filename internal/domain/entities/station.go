package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelStation represents a fuel station
type FuelStation struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	City             string          `json:"city"`
	Latitude         decimal.Decimal `json:"latitude"`
	Longitude        decimal.Decimal `json:"longitude"`
	HasRFID          bool            `json:"hasRfid"`
	OperationalHours string          `json:"operationalHours"`
	Rating           decimal.Decimal `json:"rating"`
	CreatedAt        time.Time       `json:"createdAt"`

	// FuelPrices holds the station's current price list when loaded
	FuelPrices []*FuelPrice `json:"fuelPrices,omitempty"`
}

// CreateFuelStationInput represents input for registering a station
type CreateFuelStationInput struct {
	Name             string `json:"name" binding:"required"`
	Address          string `json:"address" binding:"required"`
	City             string `json:"city" binding:"required"`
	Latitude         string `json:"latitude" binding:"required"`
	Longitude        string `json:"longitude" binding:"required"`
	HasRFID          bool   `json:"hasRfid"`
	OperationalHours string `json:"operationalHours" binding:"required"`
	Rating           string `json:"rating"`
}

// NearbyStationsQuery represents the station locator query parameters
type NearbyStationsQuery struct {
	Latitude  float64 `form:"lat"`
	Longitude float64 `form:"lng"`
	RadiusKM  float64 `form:"radius"`
}
