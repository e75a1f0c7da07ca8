package entities

import (
	"encoding/json"
	"regexp"
	"time"

	domainerrors "fuelpass.backend/internal/domain/errors"
)

// PaymentMethodType represents the kind of payment instrument on file
type PaymentMethodType string

const (
	PaymentMethodTypeCard PaymentMethodType = "card"
	PaymentMethodTypeUPI  PaymentMethodType = "upi"
)

// CardDetails holds the stored fields for a card instrument.
// Only the last four digits are ever persisted.
type CardDetails struct {
	HolderName  string `json:"holderName"`
	Last4       string `json:"last4"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	Network     string `json:"network"`
}

// UPIDetails holds the stored fields for a UPI instrument
type UPIDetails struct {
	VPA string `json:"vpa"`
}

// PaymentMethodDetails is a tagged union over the known instrument kinds.
// Exactly one variant is non-nil, matching the owning method's Type.
type PaymentMethodDetails struct {
	Card *CardDetails `json:"card,omitempty"`
	UPI  *UPIDetails  `json:"upi,omitempty"`
}

var (
	last4Pattern = regexp.MustCompile(`^\d{4}$`)
	vpaPattern   = regexp.MustCompile(`^[\w.\-]+@[\w]+$`)
)

// ParsePaymentMethodDetails validates a raw details blob against the declared
// type and returns the typed variant. Unknown types and missing required
// fields are rejected.
func ParsePaymentMethodDetails(pmType PaymentMethodType, raw json.RawMessage) (*PaymentMethodDetails, error) {
	switch pmType {
	case PaymentMethodTypeCard:
		var card CardDetails
		if err := json.Unmarshal(raw, &card); err != nil {
			return nil, domainerrors.BadRequest("malformed card details")
		}
		if card.HolderName == "" || !last4Pattern.MatchString(card.Last4) {
			return nil, domainerrors.BadRequest("card details require holderName and 4-digit last4")
		}
		if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 || card.ExpiryYear < time.Now().Year() {
			return nil, domainerrors.BadRequest("card expiry is invalid")
		}
		return &PaymentMethodDetails{Card: &card}, nil
	case PaymentMethodTypeUPI:
		var upi UPIDetails
		if err := json.Unmarshal(raw, &upi); err != nil {
			return nil, domainerrors.BadRequest("malformed upi details")
		}
		if !vpaPattern.MatchString(upi.VPA) {
			return nil, domainerrors.BadRequest("upi details require a valid vpa")
		}
		return &PaymentMethodDetails{UPI: &upi}, nil
	default:
		return nil, domainerrors.BadRequest("unsupported payment method type")
	}
}

// PaymentMethod represents a stored payment instrument
type PaymentMethod struct {
	ID        uint                  `json:"id"`
	UserID    uint                  `json:"userId"`
	Type      PaymentMethodType     `json:"type"`
	Details   *PaymentMethodDetails `json:"details"`
	IsDefault bool                  `json:"isDefault"`
	CreatedAt time.Time             `json:"createdAt"`
}

// CreatePaymentMethodInput represents input for adding a payment method
type CreatePaymentMethodInput struct {
	Type      string          `json:"type" binding:"required,oneof=card upi"`
	Details   json.RawMessage `json:"details" binding:"required"`
	IsDefault bool            `json:"isDefault"`
}
