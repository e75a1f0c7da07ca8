package repositories

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
)

// PaymentMethodRepository defines payment method persistence operations
type PaymentMethodRepository interface {
	// Create persists a method; when method.IsDefault is set the previous
	// default for the user is unset in the same operation.
	Create(ctx context.Context, method *entities.PaymentMethod) error
	GetByID(ctx context.Context, id uint) (*entities.PaymentMethod, error)
	GetByUserID(ctx context.Context, userID uint) ([]*entities.PaymentMethod, error)
	GetDefaultByUserID(ctx context.Context, userID uint) (*entities.PaymentMethod, error)
	Delete(ctx context.Context, id uint) error
}
