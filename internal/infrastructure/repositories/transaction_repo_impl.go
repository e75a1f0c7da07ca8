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

// TransactionRepository implements transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a transaction record. A missing transactionId and
// timestamp are filled in here.
func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now()
	}
	if txn.TransactionID == "" {
		txn.TransactionID = entities.NewTransactionID("FT")
	}

	m := &models.Transaction{
		TransactionID:   txn.TransactionID,
		UserID:          txn.UserID,
		VehicleID:       txn.VehicleID,
		StationID:       txn.StationID,
		FuelType:        string(txn.FuelType),
		Quantity:        txn.Quantity,
		PricePerUnit:    txn.PricePerUnit,
		TotalAmount:     txn.TotalAmount,
		PaymentMethodID: txn.PaymentMethodID,
		PaymentType:     string(txn.PaymentType),
		Status:          string(txn.Status),
		Timestamp:       txn.Timestamp,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	txn.ID = m.ID
	return nil
}

// GetByTransactionID gets a transaction by its public identifier
func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Transaction, error) {
	var m models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets a user's transactions, newest first
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*entities.Transaction, int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).Where("user_id = ?", userID).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Transaction
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	return r.toEntities(ms), total, nil
}

// GetByVehicleID gets a vehicle's transactions, newest first
func (r *TransactionRepository) GetByVehicleID(ctx context.Context, vehicleID uint) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("timestamp DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// GetByStationID gets a station's transactions, newest first
func (r *TransactionRepository) GetByStationID(ctx context.Context, stationID uint, limit, offset int) ([]*entities.Transaction, int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("station_id = ?", stationID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).Where("station_id = ?", stationID).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Transaction
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	return r.toEntities(ms), total, nil
}

func (r *TransactionRepository) toEntities(ms []models.Transaction) []*entities.Transaction {
	txns := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txns = append(txns, r.toEntity(&ms[i]))
	}
	return txns
}

func (r *TransactionRepository) toEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		VehicleID:       m.VehicleID,
		StationID:       m.StationID,
		FuelType:        entities.FuelType(m.FuelType),
		Quantity:        m.Quantity,
		PricePerUnit:    m.PricePerUnit,
		TotalAmount:     m.TotalAmount,
		PaymentMethodID: m.PaymentMethodID,
		PaymentType:     entities.PaymentType(m.PaymentType),
		Status:          entities.TransactionStatus(m.Status),
		Timestamp:       m.Timestamp,
	}
}
