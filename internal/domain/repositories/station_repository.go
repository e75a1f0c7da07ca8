package repositories

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
)

// StationRepository defines fuel station persistence operations
type StationRepository interface {
	Create(ctx context.Context, station *entities.FuelStation) error
	GetByID(ctx context.Context, id uint) (*entities.FuelStation, error)
	List(ctx context.Context) ([]*entities.FuelStation, error)
}

// FuelPriceRepository defines fuel price persistence operations
type FuelPriceRepository interface {
	Create(ctx context.Context, price *entities.FuelPrice) error
	GetByStationID(ctx context.Context, stationID uint) ([]*entities.FuelPrice, error)
}
