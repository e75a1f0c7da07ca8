package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/infrastructure/models"
)

// PaymentMethodRepository implements payment method data operations
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Create creates a payment method. When the new method is the default,
// the previous default is unset in the same transaction.
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entities.PaymentMethod) error {
	details, err := json.Marshal(method.Details)
	if err != nil {
		return err
	}

	m := &models.PaymentMethod{
		UserID:    method.UserID,
		Type:      string(method.Type),
		Details:   string(details),
		IsDefault: method.IsDefault,
		CreatedAt: time.Now(),
	}

	db := GetDB(ctx, r.db)
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("user_id = ? AND is_default = ?", m.UserID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return err
	}

	method.ID = m.ID
	method.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a payment method by ID
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uint) (*entities.PaymentMethod, error) {
	var m models.PaymentMethod
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// GetByUserID gets all payment methods for a user
func (r *PaymentMethodRepository) GetByUserID(ctx context.Context, userID uint) ([]*entities.PaymentMethod, error) {
	var ms []models.PaymentMethod
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("is_default DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	methods := make([]*entities.PaymentMethod, 0, len(ms))
	for i := range ms {
		method, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, nil
}

// GetDefaultByUserID gets the user's default payment method
func (r *PaymentMethodRepository) GetDefaultByUserID(ctx context.Context, userID uint) (*entities.PaymentMethod, error) {
	var m models.PaymentMethod
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ? AND is_default = ?", userID, true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// Delete removes a payment method
func (r *PaymentMethodRepository) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.PaymentMethod{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) toEntity(m *models.PaymentMethod) (*entities.PaymentMethod, error) {
	var details entities.PaymentMethodDetails
	if err := json.Unmarshal([]byte(m.Details), &details); err != nil {
		return nil, err
	}
	return &entities.PaymentMethod{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.PaymentMethodType(m.Type),
		Details:   &details,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}, nil
}
