package usecases

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/volatiletech/null/v8"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
)

// VehicleUsecase handles vehicle registration and RFID tag assignment
type VehicleUsecase struct {
	vehicleRepo repositories.VehicleRepository
	tagRepo     repositories.RFIDTagRepository
}

// NewVehicleUsecase creates a new vehicle usecase
func NewVehicleUsecase(vehicleRepo repositories.VehicleRepository, tagRepo repositories.RFIDTagRepository) *VehicleUsecase {
	return &VehicleUsecase{vehicleRepo: vehicleRepo, tagRepo: tagRepo}
}

var newTagNumber = func() string {
	return fmt.Sprintf("FT%07d", rand.Intn(10000000))
}

// CreateVehicle registers a vehicle for the user
func (u *VehicleUsecase) CreateVehicle(ctx context.Context, userID uint, input *entities.CreateVehicleInput) (*entities.Vehicle, error) {
	vehicle := &entities.Vehicle{
		UserID:             userID,
		Make:               input.Make,
		Model:              input.Model,
		RegistrationNumber: input.RegistrationNumber,
		FuelType:           entities.FuelType(input.FuelType),
	}
	if err := u.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// GetVehicle returns a vehicle with its assigned RFID tag, enforcing ownership
func (u *VehicleUsecase) GetVehicle(ctx context.Context, userID, vehicleID uint) (*entities.Vehicle, error) {
	vehicle, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, domainerrors.Forbidden("vehicle belongs to another user")
	}
	u.attachTag(ctx, vehicle)
	return vehicle, nil
}

// ListVehicles returns the user's vehicles with their RFID tags
func (u *VehicleUsecase) ListVehicles(ctx context.Context, userID uint) ([]*entities.Vehicle, error) {
	vehicles, err := u.vehicleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		u.attachTag(ctx, v)
	}
	return vehicles, nil
}

// UpdateVehicle updates a vehicle's mutable fields, enforcing ownership
func (u *VehicleUsecase) UpdateVehicle(ctx context.Context, userID, vehicleID uint, input *entities.UpdateVehicleInput) (*entities.Vehicle, error) {
	vehicle, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, domainerrors.Forbidden("vehicle belongs to another user")
	}

	if input.Make != "" {
		vehicle.Make = input.Make
	}
	if input.Model != "" {
		vehicle.Model = input.Model
	}
	if input.FuelType != "" {
		vehicle.FuelType = entities.FuelType(input.FuelType)
	}

	if err := u.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle, enforcing ownership
func (u *VehicleUsecase) DeleteVehicle(ctx context.Context, userID, vehicleID uint) error {
	vehicle, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.UserID != userID {
		return domainerrors.Forbidden("vehicle belongs to another user")
	}
	return u.vehicleRepo.Delete(ctx, vehicleID)
}

// AssignRFIDTag issues a new active tag for the vehicle. A vehicle holds
// at most one active tag; an existing one is rejected.
func (u *VehicleUsecase) AssignRFIDTag(ctx context.Context, userID, vehicleID uint) (*entities.RFIDTag, error) {
	vehicle, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, domainerrors.Forbidden("vehicle belongs to another user")
	}

	existing, err := u.tagRepo.GetByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	for _, tag := range existing {
		if tag.Status == entities.RFIDTagStatusActive {
			return nil, domainerrors.Conflict("vehicle already has an active RFID tag")
		}
	}

	tag := &entities.RFIDTag{
		VehicleID: null.UintFrom(vehicleID),
		TagNumber: newTagNumber(),
		Status:    entities.RFIDTagStatusActive,
	}
	if err := u.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (u *VehicleUsecase) attachTag(ctx context.Context, vehicle *entities.Vehicle) {
	tags, err := u.tagRepo.GetByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return
	}
	for _, tag := range tags {
		if tag.Status == entities.RFIDTagStatusActive {
			vehicle.RFIDTag = tag
			return
		}
	}
}
