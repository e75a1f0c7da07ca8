package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/infrastructure/models"
)

// WalletRepository implements the wallet ledger
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a wallet for a user
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	now := time.Now()
	m := &models.Wallet{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	wallet.ID = m.ID
	wallet.CreatedAt = m.CreatedAt
	wallet.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a user's wallet
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Credit applies balance += amount as a single relative update
func (r *WalletRepository) Credit(ctx context.Context, userID uint, amount decimal.Decimal) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DebitIfSufficient applies balance -= amount only when the balance
// covers it. The precondition and the mutation are one conditional
// UPDATE, so two concurrent debits can never both pass the check
// against the same funds.
func (r *WalletRepository) DebitIfSufficient(ctx context.Context, userID uint, amount decimal.Decimal) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing wallet from an uncovered debit.
		var count int64
		if err := db.WithContext(ctx).Model(&models.Wallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInsufficientBalance
	}
	return nil
}

// UpdateSettings replaces the auto-reload configuration group
func (r *WalletRepository) UpdateSettings(ctx context.Context, userID uint, settings *entities.WalletSettingsInput) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"auto_reload_enabled":           settings.AutoReloadEnabled,
			"auto_reload_threshold":         settings.AutoReloadThreshold,
			"auto_reload_amount":            settings.AutoReloadAmount,
			"auto_reload_payment_method_id": settings.AutoReloadPaymentMethodID,
			"updated_at":                    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WalletRepository) toEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:                        m.ID,
		UserID:                    m.UserID,
		Balance:                   m.Balance,
		AutoReloadEnabled:         m.AutoReloadEnabled,
		AutoReloadThreshold:       m.AutoReloadThreshold,
		AutoReloadAmount:          m.AutoReloadAmount,
		AutoReloadPaymentMethodID: m.AutoReloadPaymentMethodID,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}
