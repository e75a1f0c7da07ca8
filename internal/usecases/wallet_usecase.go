package usecases

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
)

// WalletUsecase handles wallet reads and settings. Balance mutation goes
// through SettlementUsecase only.
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	pmRepo     repositories.PaymentMethodRepository
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(walletRepo repositories.WalletRepository, pmRepo repositories.PaymentMethodRepository) *WalletUsecase {
	return &WalletUsecase{walletRepo: walletRepo, pmRepo: pmRepo}
}

// GetWallet returns the user's wallet
func (u *WalletUsecase) GetWallet(ctx context.Context, userID uint) (*entities.Wallet, error) {
	return u.walletRepo.GetByUserID(ctx, userID)
}

// UpdateSettings replaces the auto-reload configuration. When auto-reload
// is enabled the whole group must be present and valid.
func (u *WalletUsecase) UpdateSettings(ctx context.Context, userID uint, input *entities.WalletSettingsInput) (*entities.Wallet, error) {
	if input.AutoReloadEnabled {
		if !input.AutoReloadThreshold.Valid || !input.AutoReloadAmount.Valid || !input.AutoReloadPaymentMethodID.Valid {
			return nil, domainerrors.BadRequest("auto-reload requires threshold, amount and payment method")
		}
		if _, err := parseAmount("autoReloadThreshold", input.AutoReloadThreshold.String); err != nil {
			return nil, err
		}
		if _, err := parseAmount("autoReloadAmount", input.AutoReloadAmount.String); err != nil {
			return nil, err
		}

		method, err := u.pmRepo.GetByID(ctx, input.AutoReloadPaymentMethodID.Uint)
		if err != nil {
			return nil, err
		}
		if method.UserID != userID {
			return nil, domainerrors.Forbidden("payment method belongs to another user")
		}
	}

	if err := u.walletRepo.UpdateSettings(ctx, userID, input); err != nil {
		return nil, err
	}
	return u.walletRepo.GetByUserID(ctx, userID)
}
