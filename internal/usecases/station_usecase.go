package usecases

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
)

const earthRadiusKM = 6371.0

// StationUsecase handles fuel station directory operations
type StationUsecase struct {
	stationRepo repositories.StationRepository
	priceRepo   repositories.FuelPriceRepository
	notifier    Notifier
}

// NewStationUsecase creates a new station usecase
func NewStationUsecase(stationRepo repositories.StationRepository, priceRepo repositories.FuelPriceRepository, notifier Notifier) *StationUsecase {
	return &StationUsecase{stationRepo: stationRepo, priceRepo: priceRepo, notifier: notifier}
}

// CreateStation registers a new fuel station
func (u *StationUsecase) CreateStation(ctx context.Context, input *entities.CreateFuelStationInput) (*entities.FuelStation, error) {
	lat, err := decimal.NewFromString(input.Latitude)
	if err != nil {
		return nil, domainerrors.BadRequest("latitude is not a valid decimal")
	}
	lng, err := decimal.NewFromString(input.Longitude)
	if err != nil {
		return nil, domainerrors.BadRequest("longitude is not a valid decimal")
	}

	rating := decimal.Zero
	if input.Rating != "" {
		rating, err = decimal.NewFromString(input.Rating)
		if err != nil {
			return nil, domainerrors.BadRequest("rating is not a valid decimal")
		}
	}

	station := &entities.FuelStation{
		Name:             input.Name,
		Address:          input.Address,
		City:             input.City,
		Latitude:         lat,
		Longitude:        lng,
		HasRFID:          input.HasRFID,
		OperationalHours: input.OperationalHours,
		Rating:           rating,
	}
	if err := u.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}

	u.notifier.Broadcast(EventStationStatusUpdate, map[string]interface{}{
		"message": "New station available",
		"station": station,
	})
	return station, nil
}

// GetStation returns a station with its current price list
func (u *StationUsecase) GetStation(ctx context.Context, id uint) (*entities.FuelStation, error) {
	station, err := u.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prices, err := u.priceRepo.GetByStationID(ctx, id)
	if err != nil {
		return nil, err
	}
	station.FuelPrices = prices
	return station, nil
}

// ListStations returns all stations
func (u *StationUsecase) ListStations(ctx context.Context) ([]*entities.FuelStation, error) {
	return u.stationRepo.List(ctx)
}

// NearbyStations returns stations within the requested radius (km) of
// the given point, nearest first.
func (u *StationUsecase) NearbyStations(ctx context.Context, query *entities.NearbyStationsQuery) ([]*entities.FuelStation, error) {
	if query.Latitude < -90 || query.Latitude > 90 || query.Longitude < -180 || query.Longitude > 180 {
		return nil, domainerrors.BadRequest("coordinates out of range")
	}
	radius := query.RadiusKM
	if radius <= 0 {
		radius = 10
	}

	stations, err := u.stationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		station  *entities.FuelStation
		distance float64
	}
	var nearby []scored
	for _, s := range stations {
		d := haversineKM(query.Latitude, query.Longitude, s.Latitude.InexactFloat64(), s.Longitude.InexactFloat64())
		if d <= radius {
			nearby = append(nearby, scored{station: s, distance: d})
		}
	}

	// insertion sort by distance; station lists are small
	for i := 1; i < len(nearby); i++ {
		for j := i; j > 0 && nearby[j].distance < nearby[j-1].distance; j-- {
			nearby[j], nearby[j-1] = nearby[j-1], nearby[j]
		}
	}

	result := make([]*entities.FuelStation, 0, len(nearby))
	for _, n := range nearby {
		result = append(result, n.station)
	}
	return result, nil
}

// SetFuelPrice records a new price list entry for a station
func (u *StationUsecase) SetFuelPrice(ctx context.Context, stationID uint, input *entities.CreateFuelPriceInput) (*entities.FuelPrice, error) {
	if _, err := u.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}

	price, err := parseAmount("price", input.Price)
	if err != nil {
		return nil, err
	}

	effective := input.EffectiveDate
	if effective.IsZero() {
		effective = time.Now()
	}
	entry := &entities.FuelPrice{
		StationID:     stationID,
		FuelType:      entities.FuelType(input.FuelType),
		Price:         price,
		EffectiveDate: effective,
	}
	if err := u.priceRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetFuelPrices returns a station's price list, newest entries first
func (u *StationUsecase) GetFuelPrices(ctx context.Context, stationID uint) ([]*entities.FuelPrice, error) {
	if _, err := u.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}
	return u.priceRepo.GetByStationID(ctx, stationID)
}

func haversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
