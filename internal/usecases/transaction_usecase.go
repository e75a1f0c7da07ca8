package usecases

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
	"fuelpass.backend/internal/domain/repositories"
)

// TransactionUsecase handles transaction history reads
type TransactionUsecase struct {
	txnRepo repositories.TransactionRepository
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(txnRepo repositories.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{txnRepo: txnRepo}
}

// GetUserTransactions returns the user's history, newest first
func (u *TransactionUsecase) GetUserTransactions(ctx context.Context, userID uint, limit, offset int) ([]*entities.Transaction, int64, error) {
	return u.txnRepo.GetByUserID(ctx, userID, limit, offset)
}

// GetStationTransactions returns a station's history, newest first
func (u *TransactionUsecase) GetStationTransactions(ctx context.Context, stationID uint, limit, offset int) ([]*entities.Transaction, int64, error) {
	return u.txnRepo.GetByStationID(ctx, stationID, limit, offset)
}

// GetVehicleTransactions returns a vehicle's history, newest first
func (u *TransactionUsecase) GetVehicleTransactions(ctx context.Context, vehicleID uint) ([]*entities.Transaction, error) {
	return u.txnRepo.GetByVehicleID(ctx, vehicleID)
}
