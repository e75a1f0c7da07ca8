package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/infrastructure/models"
)

// VehicleRepository implements vehicle data operations
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create creates a new vehicle
func (r *VehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	m := &models.Vehicle{
		UserID:             vehicle.UserID,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		RegistrationNumber: vehicle.RegistrationNumber,
		FuelType:           string(vehicle.FuelType),
		CreatedAt:          time.Now(),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	vehicle.ID = m.ID
	vehicle.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a vehicle by ID
func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*entities.Vehicle, error) {
	var m models.Vehicle
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets all vehicles for a user
func (r *VehicleRepository) GetByUserID(ctx context.Context, userID uint) ([]*entities.Vehicle, error) {
	var ms []models.Vehicle
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*entities.Vehicle, 0, len(ms))
	for i := range ms {
		vehicles = append(vehicles, r.toEntity(&ms[i]))
	}
	return vehicles, nil
}

// Update updates a vehicle's mutable fields
func (r *VehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]interface{}{
			"make":      vehicle.Make,
			"model":     vehicle.Model,
			"fuel_type": string(vehicle.FuelType),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a vehicle
func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VehicleRepository) toEntity(m *models.Vehicle) *entities.Vehicle {
	return &entities.Vehicle{
		ID:                 m.ID,
		UserID:             m.UserID,
		Make:               m.Make,
		Model:              m.Model,
		RegistrationNumber: m.RegistrationNumber,
		FuelType:           entities.FuelType(m.FuelType),
		CreatedAt:          m.CreatedAt,
	}
}
