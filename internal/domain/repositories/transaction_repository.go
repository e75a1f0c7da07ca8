package repositories

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
)

// TransactionRepository defines transaction persistence operations.
// Transactions are append-only; there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entities.Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Transaction, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*entities.Transaction, int64, error)
	GetByVehicleID(ctx context.Context, vehicleID uint) ([]*entities.Transaction, error)
	GetByStationID(ctx context.Context, stationID uint, limit, offset int) ([]*entities.Transaction, int64, error)
}
