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

// StationRepository implements fuel station data operations
type StationRepository struct {
	db *gorm.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{db: db}
}

// Create creates a new fuel station
func (r *StationRepository) Create(ctx context.Context, station *entities.FuelStation) error {
	m := &models.FuelStation{
		Name:             station.Name,
		Address:          station.Address,
		City:             station.City,
		Latitude:         station.Latitude,
		Longitude:        station.Longitude,
		HasRFID:          station.HasRFID,
		OperationalHours: station.OperationalHours,
		Rating:           station.Rating,
		CreatedAt:        time.Now(),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	station.ID = m.ID
	station.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a station by ID
func (r *StationRepository) GetByID(ctx context.Context, id uint) (*entities.FuelStation, error) {
	var m models.FuelStation
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns all stations
func (r *StationRepository) List(ctx context.Context) ([]*entities.FuelStation, error) {
	var ms []models.FuelStation
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	stations := make([]*entities.FuelStation, 0, len(ms))
	for i := range ms {
		stations = append(stations, r.toEntity(&ms[i]))
	}
	return stations, nil
}

func (r *StationRepository) toEntity(m *models.FuelStation) *entities.FuelStation {
	return &entities.FuelStation{
		ID:               m.ID,
		Name:             m.Name,
		Address:          m.Address,
		City:             m.City,
		Latitude:         m.Latitude,
		Longitude:        m.Longitude,
		HasRFID:          m.HasRFID,
		OperationalHours: m.OperationalHours,
		Rating:           m.Rating,
		CreatedAt:        m.CreatedAt,
	}
}

// FuelPriceRepository implements fuel price data operations
type FuelPriceRepository struct {
	db *gorm.DB
}

// NewFuelPriceRepository creates a new fuel price repository
func NewFuelPriceRepository(db *gorm.DB) *FuelPriceRepository {
	return &FuelPriceRepository{db: db}
}

// Create creates a new fuel price entry
func (r *FuelPriceRepository) Create(ctx context.Context, price *entities.FuelPrice) error {
	m := &models.FuelPrice{
		StationID:     price.StationID,
		FuelType:      string(price.FuelType),
		Price:         price.Price,
		EffectiveDate: price.EffectiveDate,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	price.ID = m.ID
	return nil
}

// GetByStationID gets the price list for a station
func (r *FuelPriceRepository) GetByStationID(ctx context.Context, stationID uint) ([]*entities.FuelPrice, error) {
	var ms []models.FuelPrice
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("station_id = ?", stationID).Order("effective_date DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	prices := make([]*entities.FuelPrice, 0, len(ms))
	for i := range ms {
		prices = append(prices, &entities.FuelPrice{
			ID:            ms[i].ID,
			StationID:     ms[i].StationID,
			FuelType:      entities.FuelType(ms[i].FuelType),
			Price:         ms[i].Price,
			EffectiveDate: ms[i].EffectiveDate,
		})
	}
	return prices, nil
}
