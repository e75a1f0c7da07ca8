package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
)

func TestVehicleRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createVehicleTable(t, db)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	v := &entities.Vehicle{
		UserID:             1,
		Make:               "Maruti",
		Model:              "Swift",
		RegistrationNumber: "KA01AB1234",
		FuelType:           entities.FuelTypePetrol,
	}
	require.NoError(t, repo.Create(ctx, v))
	require.NotZero(t, v.ID)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, "KA01AB1234", got.RegistrationNumber)

	v.Model = "Swift Dzire"
	v.FuelType = entities.FuelTypeDiesel
	require.NoError(t, repo.Update(ctx, v))

	got, err = repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, "Swift Dzire", got.Model)
	require.Equal(t, entities.FuelTypeDiesel, got.FuelType)

	list, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, v.ID))
	_, err = repo.GetByID(ctx, v.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVehicleRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createVehicleTable(t, db)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVehicleRepository_DuplicateRegistration(t *testing.T) {
	db := newTestDB(t)
	createVehicleTable(t, db)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Vehicle{UserID: 1, Make: "Maruti", Model: "Swift", RegistrationNumber: "KA01AB1234", FuelType: entities.FuelTypePetrol}))
	require.Error(t, repo.Create(ctx, &entities.Vehicle{UserID: 2, Make: "Honda", Model: "City", RegistrationNumber: "KA01AB1234", FuelType: entities.FuelTypePetrol}))
}
