package entities

import (
	"time"
)

// FuelType is the fuel a vehicle runs on and a price list entry refers to
type FuelType string

const (
	FuelTypePetrol FuelType = "petrol"
	FuelTypeDiesel FuelType = "diesel"
	FuelTypeCNG    FuelType = "cng"
	// FuelTypeNA is the sentinel used on wallet top-up transactions
	FuelTypeNA FuelType = "N/A"
)

// Vehicle represents a registered vehicle
type Vehicle struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"userId"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registrationNumber"`
	FuelType           FuelType  `json:"fuelType"`
	CreatedAt          time.Time `json:"createdAt"`

	// RFIDTag is the tag currently assigned to this vehicle, if any
	RFIDTag *RFIDTag `json:"rfidTag,omitempty"`
}

// CreateVehicleInput represents input for registering a vehicle
type CreateVehicleInput struct {
	Make               string `json:"make" binding:"required"`
	Model              string `json:"model" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	FuelType           string `json:"fuelType" binding:"required,oneof=petrol diesel cng"`
}

// UpdateVehicleInput represents input for updating a vehicle
type UpdateVehicleInput struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	FuelType string `json:"fuelType" binding:"omitempty,oneof=petrol diesel cng"`
}
