package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
)

func seedTransaction(t *testing.T, repo *TransactionRepository, userID uint, txnID string, amount string, ts time.Time) *entities.Transaction {
	t.Helper()
	txn := &entities.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		StationID:     null.UintFrom(1),
		FuelType:      entities.FuelTypePetrol,
		Quantity:      decimal.RequireFromString("10.00"),
		PricePerUnit:  decimal.RequireFromString("95.50"),
		TotalAmount:   decimal.RequireFromString(amount),
		PaymentType:   entities.PaymentTypeRFID,
		Status:        entities.TransactionStatusCompleted,
		Timestamp:     ts,
	}
	require.NoError(t, repo.Create(context.Background(), txn))
	return txn
}

func TestTransactionRepository_CreateAndGetByTransactionID(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	txn := seedTransaction(t, repo, 1, "FT-1724900000000", "955.00", time.Now())
	require.NotZero(t, txn.ID)

	got, err := repo.GetByTransactionID(ctx, "FT-1724900000000")
	require.NoError(t, err)
	require.Equal(t, txn.ID, got.ID)
	require.Equal(t, uint(1), got.UserID)
	require.True(t, got.TotalAmount.Equal(decimal.RequireFromString("955.00")))

	_, err = repo.GetByTransactionID(ctx, "FT-missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTransactionRepository_Create_SetsTimestampWhenZero(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)

	txn := &entities.Transaction{
		TransactionID: "TOP-1724900000001",
		UserID:        1,
		FuelType:      entities.FuelTypeNA,
		Quantity:      decimal.Zero,
		PricePerUnit:  decimal.Zero,
		TotalAmount:   decimal.NewFromInt(200),
		PaymentType:   entities.PaymentTypeTopUp,
		Status:        entities.TransactionStatusCompleted,
	}
	require.NoError(t, repo.Create(context.Background(), txn))
	require.False(t, txn.Timestamp.IsZero())
}

func TestTransactionRepository_Create_DuplicateTransactionID(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)

	seedTransaction(t, repo, 1, "FT-1724900000002", "100.00", time.Now())

	dup := &entities.Transaction{
		TransactionID: "FT-1724900000002",
		UserID:        2,
		FuelType:      entities.FuelTypeDiesel,
		Quantity:      decimal.NewFromInt(5),
		PricePerUnit:  decimal.NewFromInt(90),
		TotalAmount:   decimal.NewFromInt(450),
		PaymentType:   entities.PaymentTypeRFID,
		Status:        entities.TransactionStatusCompleted,
		Timestamp:     time.Now(),
	}
	require.Error(t, repo.Create(context.Background(), dup))
}

func TestTransactionRepository_GetByUserID_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedTransaction(t, repo, 1, fmt.Sprintf("FT-order-%d", i), "100.00", base.Add(time.Duration(i)*time.Minute))
	}
	// Another user's entry must not leak into the listing.
	seedTransaction(t, repo, 2, "FT-other-user", "50.00", base)

	txns, total, err := repo.GetByUserID(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, txns, 5)
	for i := 1; i < len(txns); i++ {
		require.False(t, txns[i].Timestamp.After(txns[i-1].Timestamp), "expected newest first")
	}

	page, total, err := repo.GetByUserID(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	require.Equal(t, "FT-order-2", page[0].TransactionID)
	require.Equal(t, "FT-order-1", page[1].TransactionID)
}

func TestTransactionRepository_GetByVehicleID(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	txn := &entities.Transaction{
		TransactionID: "FT-vehicle-1",
		UserID:        1,
		VehicleID:     null.UintFrom(7),
		FuelType:      entities.FuelTypePetrol,
		Quantity:      decimal.NewFromInt(10),
		PricePerUnit:  decimal.NewFromInt(95),
		TotalAmount:   decimal.NewFromInt(950),
		PaymentType:   entities.PaymentTypeRFID,
		Status:        entities.TransactionStatusCompleted,
		Timestamp:     time.Now(),
	}
	require.NoError(t, repo.Create(ctx, txn))

	txns, err := repo.GetByVehicleID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	require.Equal(t, uint(7), txns[0].VehicleID.Uint)

	txns, err = repo.GetByVehicleID(ctx, 8)
	require.NoError(t, err)
	require.Empty(t, txns)
}

func TestTransactionRepository_GetByStationID(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		seedTransaction(t, repo, uint(i+1), fmt.Sprintf("FT-station-%d", i), "100.00", base.Add(time.Duration(i)*time.Minute))
	}

	txns, total, err := repo.GetByStationID(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, txns, 2)
	require.Equal(t, "FT-station-2", txns[0].TransactionID)
}

func TestTransactionRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, &entities.Transaction{TransactionID: "FT-x", UserID: 1, Timestamp: time.Now()}))
	_, err := repo.GetByTransactionID(ctx, "FT-x")
	require.Error(t, err)
	_, _, err = repo.GetByUserID(ctx, 1, 0, 0)
	require.Error(t, err)
	_, err = repo.GetByVehicleID(ctx, 1)
	require.Error(t, err)
	_, _, err = repo.GetByStationID(ctx, 1, 0, 0)
	require.Error(t, err)
}
