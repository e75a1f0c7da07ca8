package repositories

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
)

// RFIDTagRepository defines RFID tag persistence operations
type RFIDTagRepository interface {
	Create(ctx context.Context, tag *entities.RFIDTag) error
	GetByID(ctx context.Context, id uint) (*entities.RFIDTag, error)
	GetByTagNumber(ctx context.Context, tagNumber string) (*entities.RFIDTag, error)
	GetByVehicleID(ctx context.Context, vehicleID uint) ([]*entities.RFIDTag, error)
	UpdateStatus(ctx context.Context, id uint, status entities.RFIDTagStatus) error
}
