package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// PaymentType represents how a transaction was funded
type PaymentType string

const (
	// PaymentTypeRFID is a fuel purchase funded from the wallet balance
	PaymentTypeRFID  PaymentType = "rfid"
	PaymentTypeCard  PaymentType = "card"
	PaymentTypeUPI   PaymentType = "upi"
	PaymentTypeCash  PaymentType = "cash"
	PaymentTypeTopUp PaymentType = "topup"
)

// TransactionStatus represents transaction lifecycle status
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only record of a money movement: a wallet
// top-up or a fuel purchase. Amount fields of a completed transaction
// are never modified.
type Transaction struct {
	ID              uint              `json:"id"`
	TransactionID   string            `json:"transactionId"`
	UserID          uint              `json:"userId"`
	VehicleID       null.Uint         `json:"vehicleId,omitempty"`
	StationID       null.Uint         `json:"stationId,omitempty"`
	FuelType        FuelType          `json:"fuelType"`
	Quantity        decimal.Decimal   `json:"quantity"`
	PricePerUnit    decimal.Decimal   `json:"pricePerUnit"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	PaymentMethodID null.Uint         `json:"paymentMethodId,omitempty"`
	PaymentType     PaymentType       `json:"paymentType"`
	Status          TransactionStatus `json:"status"`
	Timestamp       time.Time         `json:"timestamp"`
}

// NewTransactionID builds a public transaction identifier. The
// millisecond timestamp keeps ids roughly sortable; the uuid-derived
// suffix keeps two settlements landing in the same millisecond from
// colliding on the unique index.
func NewTransactionID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// CreateTransactionInput represents input for recording a fuel purchase
// through the customer API
type CreateTransactionInput struct {
	VehicleID       uint   `json:"vehicleId" binding:"required"`
	StationID       uint   `json:"stationId" binding:"required"`
	FuelType        string `json:"fuelType" binding:"required,oneof=petrol diesel cng"`
	Quantity        string `json:"quantity" binding:"required"`
	PricePerUnit    string `json:"pricePerUnit" binding:"required"`
	PaymentType     string `json:"paymentType" binding:"required,oneof=rfid card upi cash"`
	PaymentMethodID uint   `json:"paymentMethodId"`
}

// CompleteTransactionInput represents the station terminal's settlement request
type CompleteTransactionInput struct {
	UserID          uint   `json:"userId" binding:"required"`
	VehicleID       uint   `json:"vehicleId" binding:"required"`
	StationID       uint   `json:"stationId" binding:"required"`
	FuelType        string `json:"fuelType" binding:"required,oneof=petrol diesel cng"`
	Quantity        string `json:"quantity" binding:"required"`
	PricePerUnit    string `json:"pricePerUnit" binding:"required"`
	PaymentType     string `json:"paymentType" binding:"required,oneof=rfid card upi cash"`
	PaymentMethodID uint   `json:"paymentMethodId"`
}
