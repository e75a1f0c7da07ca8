package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// RFIDTagStatus represents tag lifecycle status
type RFIDTagStatus string

const (
	RFIDTagStatusActive   RFIDTagStatus = "active"
	RFIDTagStatusInactive RFIDTagStatus = "inactive"
)

// RFIDTag represents an RFID tag bound to a vehicle
type RFIDTag struct {
	ID        uint          `json:"id"`
	VehicleID null.Uint     `json:"vehicleId,omitempty"`
	TagNumber string        `json:"tagNumber"`
	Status    RFIDTagStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RFIDScanInput is what a station terminal submits when a tag is read
type RFIDScanInput struct {
	TagNumber string `json:"tagNumber" binding:"required"`
	StationID uint   `json:"stationId" binding:"required"`
}

// RFIDScanResult is returned to the station terminal after a successful scan
type RFIDScanResult struct {
	Tag     *RFIDTag     `json:"tag"`
	Vehicle *Vehicle     `json:"vehicle"`
	User    *ScannedUser `json:"user"`
}

// ScannedUser is the subset of user data exposed to a station terminal
type ScannedUser struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	WalletBalance string `json:"walletBalance"`
}
