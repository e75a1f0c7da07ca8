package repositories

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
)

// VehicleRepository defines vehicle persistence operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	GetByID(ctx context.Context, id uint) (*entities.Vehicle, error)
	GetByUserID(ctx context.Context, userID uint) ([]*entities.Vehicle, error)
	Update(ctx context.Context, vehicle *entities.Vehicle) error
	Delete(ctx context.Context, id uint) error
}
