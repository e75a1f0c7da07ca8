package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"fuelpass.backend/internal/domain/entities"
)

// WalletRepository defines the wallet ledger. The balance is only ever
// moved through Credit and DebitIfSufficient; both are single-statement
// relative updates so concurrent settlements against the same wallet
// cannot interleave a stale read into the write.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByUserID(ctx context.Context, userID uint) (*entities.Wallet, error)

	// Credit applies balance += amount. Returns ErrNotFound when the
	// user has no wallet.
	Credit(ctx context.Context, userID uint, amount decimal.Decimal) error

	// DebitIfSufficient applies balance -= amount only when the current
	// balance covers it, as one conditional update. Returns
	// ErrInsufficientBalance when the balance cannot cover the debit and
	// ErrNotFound when the user has no wallet.
	DebitIfSufficient(ctx context.Context, userID uint, amount decimal.Decimal) error

	// UpdateSettings replaces the auto-reload configuration group.
	UpdateSettings(ctx context.Context, userID uint, settings *entities.WalletSettingsInput) error
}
