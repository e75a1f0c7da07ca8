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

// RFIDTagRepository implements RFID tag data operations
type RFIDTagRepository struct {
	db *gorm.DB
}

// NewRFIDTagRepository creates a new RFID tag repository
func NewRFIDTagRepository(db *gorm.DB) *RFIDTagRepository {
	return &RFIDTagRepository{db: db}
}

// Create creates a new RFID tag
func (r *RFIDTagRepository) Create(ctx context.Context, tag *entities.RFIDTag) error {
	m := &models.RFIDTag{
		VehicleID: tag.VehicleID,
		TagNumber: tag.TagNumber,
		Status:    string(tag.Status),
		CreatedAt: time.Now(),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	tag.ID = m.ID
	tag.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a tag by ID
func (r *RFIDTagRepository) GetByID(ctx context.Context, id uint) (*entities.RFIDTag, error) {
	var m models.RFIDTag
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByTagNumber gets a tag by its printed tag number
func (r *RFIDTagRepository) GetByTagNumber(ctx context.Context, tagNumber string) (*entities.RFIDTag, error) {
	var m models.RFIDTag
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("tag_number = ?", tagNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByVehicleID gets the tags assigned to a vehicle
func (r *RFIDTagRepository) GetByVehicleID(ctx context.Context, vehicleID uint) ([]*entities.RFIDTag, error) {
	var ms []models.RFIDTag
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	tags := make([]*entities.RFIDTag, 0, len(ms))
	for i := range ms {
		tags = append(tags, r.toEntity(&ms[i]))
	}
	return tags, nil
}

// UpdateStatus transitions a tag between active and inactive
func (r *RFIDTagRepository) UpdateStatus(ctx context.Context, id uint, status entities.RFIDTagStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.RFIDTag{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *RFIDTagRepository) toEntity(m *models.RFIDTag) *entities.RFIDTag {
	return &entities.RFIDTag{
		ID:        m.ID,
		VehicleID: m.VehicleID,
		TagNumber: m.TagNumber,
		Status:    entities.RFIDTagStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
