package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Wallet represents a user's stored-value wallet. One wallet per user,
// created with balance zero when the account is created. The balance is
// mutated only by the settlement usecase.
type Wallet struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"userId"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	// Auto-reload configuration; the group is nullable as a whole
	AutoReloadEnabled         bool        `json:"autoReloadEnabled"`
	AutoReloadThreshold       null.String `json:"autoReloadThreshold,omitempty"`
	AutoReloadAmount          null.String `json:"autoReloadAmount,omitempty"`
	AutoReloadPaymentMethodID null.Uint   `json:"autoReloadPaymentMethodId,omitempty"`
}

// TopUpInput represents input for a wallet top-up
type TopUpInput struct {
	Amount          string `json:"amount" binding:"required"`
	PaymentMethodID uint   `json:"paymentMethodId" binding:"required"`
}

// WalletSettingsInput represents input for updating auto-reload settings
type WalletSettingsInput struct {
	AutoReloadEnabled         bool        `json:"autoReloadEnabled"`
	AutoReloadThreshold       null.String `json:"autoReloadThreshold"`
	AutoReloadAmount          null.String `json:"autoReloadAmount"`
	AutoReloadPaymentMethodID null.Uint   `json:"autoReloadPaymentMethodId"`
}
