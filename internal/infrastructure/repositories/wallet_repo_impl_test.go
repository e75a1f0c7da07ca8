package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
)

func TestWalletRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	w := &entities.Wallet{UserID: 1, Balance: decimal.NewFromInt(500)}
	require.NoError(t, repo.Create(ctx, w))
	require.NotZero(t, w.ID)

	got, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint(1), got.UserID)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(500)))

	_, err = repo.GetByUserID(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWalletRepository_Credit(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Wallet{UserID: 1, Balance: decimal.NewFromInt(500)}))

	require.NoError(t, repo.Credit(ctx, 1, decimal.RequireFromString("200.00")))

	got, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(700)), "balance=%s", got.Balance)

	err = repo.Credit(ctx, 99, decimal.NewFromInt(10))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWalletRepository_DebitIfSufficient(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Wallet{UserID: 1, Balance: decimal.NewFromInt(700)}))

	require.NoError(t, repo.DebitIfSufficient(ctx, 1, decimal.RequireFromString("450.00")))

	got, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(250)), "balance=%s", got.Balance)

	// Balance 250 cannot cover 900; the balance must be untouched.
	err = repo.DebitIfSufficient(ctx, 1, decimal.NewFromInt(900))
	require.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)

	got, err = repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(250)), "balance=%s", got.Balance)
}

func TestWalletRepository_DebitIfSufficient_ExactBalance(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Wallet{UserID: 1, Balance: decimal.NewFromInt(100)}))

	require.NoError(t, repo.DebitIfSufficient(ctx, 1, decimal.NewFromInt(100)))

	got, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.True(t, got.Balance.IsZero(), "balance=%s", got.Balance)
}

func TestWalletRepository_DebitIfSufficient_MissingWallet(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	err := repo.DebitIfSufficient(ctx, 42, decimal.NewFromInt(10))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWalletRepository_UpdateSettings(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Wallet{UserID: 1, Balance: decimal.Zero}))

	settings := &entities.WalletSettingsInput{
		AutoReloadEnabled:         true,
		AutoReloadThreshold:       null.StringFrom("100.00"),
		AutoReloadAmount:          null.StringFrom("500.00"),
		AutoReloadPaymentMethodID: null.UintFrom(3),
	}
	require.NoError(t, repo.UpdateSettings(ctx, 1, settings))

	got, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.True(t, got.AutoReloadEnabled)
	require.Equal(t, "100.00", got.AutoReloadThreshold.String)
	require.Equal(t, "500.00", got.AutoReloadAmount.String)
	require.Equal(t, uint(3), got.AutoReloadPaymentMethodID.Uint)

	err = repo.UpdateSettings(ctx, 99, settings)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWalletRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewWalletRepository(db)
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, &entities.Wallet{UserID: 1}))
	_, err := repo.GetByUserID(ctx, 1)
	require.Error(t, err)
	require.Error(t, repo.Credit(ctx, 1, decimal.NewFromInt(1)))
	require.Error(t, repo.DebitIfSufficient(ctx, 1, decimal.NewFromInt(1)))
	require.Error(t, repo.UpdateSettings(ctx, 1, &entities.WalletSettingsInput{}))
}
