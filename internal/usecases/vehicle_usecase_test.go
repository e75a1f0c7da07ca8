package usecases_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/usecases"
)

func TestVehicleUsecase_CreateVehicle(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	u := usecases.NewVehicleUsecase(vehicles, new(MockRFIDTagRepository))

	vehicles.On("Create", mock.Anything, mock.AnythingOfType("*entities.Vehicle")).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Vehicle).ID = 1
	}).Return(nil)

	v, err := u.CreateVehicle(context.Background(), 1, &entities.CreateVehicleInput{
		Make: "Maruti", Model: "Swift", RegistrationNumber: "KA01AB1234", FuelType: "petrol",
	})
	require.NoError(t, err)
	require.Equal(t, uint(1), v.ID)
	require.Equal(t, uint(1), v.UserID)
	require.Equal(t, entities.FuelTypePetrol, v.FuelType)
}

func TestVehicleUsecase_GetVehicle_OwnershipAndTag(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	tags := new(MockRFIDTagRepository)
	u := usecases.NewVehicleUsecase(vehicles, tags)
	ctx := context.Background()

	vehicles.On("GetByID", mock.Anything, uint(7)).Return(&entities.Vehicle{ID: 7, UserID: 1}, nil)
	tags.On("GetByVehicleID", mock.Anything, uint(7)).Return([]*entities.RFIDTag{
		{ID: 2, TagNumber: "FT0000001", Status: entities.RFIDTagStatusInactive},
		{ID: 3, TagNumber: "FT0000002", Status: entities.RFIDTagStatusActive},
	}, nil)

	v, err := u.GetVehicle(ctx, 1, 7)
	require.NoError(t, err)
	require.NotNil(t, v.RFIDTag)
	require.Equal(t, "FT0000002", v.RFIDTag.TagNumber)

	_, err = u.GetVehicle(ctx, 2, 7)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVehicleUsecase_UpdateVehicle_PartialFields(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	u := usecases.NewVehicleUsecase(vehicles, new(MockRFIDTagRepository))

	vehicles.On("GetByID", mock.Anything, uint(7)).Return(&entities.Vehicle{
		ID: 7, UserID: 1, Make: "Maruti", Model: "Swift", FuelType: entities.FuelTypePetrol,
	}, nil)
	vehicles.On("Update", mock.Anything, mock.MatchedBy(func(v *entities.Vehicle) bool {
		return v.Make == "Maruti" && v.Model == "Swift Dzire" && v.FuelType == entities.FuelTypePetrol
	})).Return(nil)

	v, err := u.UpdateVehicle(context.Background(), 1, 7, &entities.UpdateVehicleInput{Model: "Swift Dzire"})
	require.NoError(t, err)
	require.Equal(t, "Swift Dzire", v.Model)
	vehicles.AssertExpectations(t)
}

func TestVehicleUsecase_DeleteVehicle_Foreign(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	u := usecases.NewVehicleUsecase(vehicles, new(MockRFIDTagRepository))

	vehicles.On("GetByID", mock.Anything, uint(7)).Return(&entities.Vehicle{ID: 7, UserID: 2}, nil)

	err := u.DeleteVehicle(context.Background(), 1, 7)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	vehicles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVehicleUsecase_AssignRFIDTag(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	tags := new(MockRFIDTagRepository)
	u := usecases.NewVehicleUsecase(vehicles, tags)

	vehicles.On("GetByID", mock.Anything, uint(7)).Return(&entities.Vehicle{ID: 7, UserID: 1}, nil)
	tags.On("GetByVehicleID", mock.Anything, uint(7)).Return([]*entities.RFIDTag{}, nil)
	tags.On("Create", mock.Anything, mock.AnythingOfType("*entities.RFIDTag")).Return(nil)

	tag, err := u.AssignRFIDTag(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Equal(t, entities.RFIDTagStatusActive, tag.Status)
	require.Regexp(t, regexp.MustCompile(`^FT\d{7}$`), tag.TagNumber)
	require.Equal(t, uint(7), tag.VehicleID.Uint)
}

func TestVehicleUsecase_AssignRFIDTag_AlreadyActive(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	tags := new(MockRFIDTagRepository)
	u := usecases.NewVehicleUsecase(vehicles, tags)

	vehicles.On("GetByID", mock.Anything, uint(7)).Return(&entities.Vehicle{ID: 7, UserID: 1}, nil)
	tags.On("GetByVehicleID", mock.Anything, uint(7)).Return([]*entities.RFIDTag{
		{ID: 2, TagNumber: "FT0000001", Status: entities.RFIDTagStatusActive},
	}, nil)

	_, err := u.AssignRFIDTag(context.Background(), 1, 7)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	tags.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
