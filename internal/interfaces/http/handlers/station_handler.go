package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/interfaces/http/response"
	"fuelpass.backend/internal/usecases"
)

type stationService interface {
	CreateStation(ctx context.Context, input *entities.CreateFuelStationInput) (*entities.FuelStation, error)
	GetStation(ctx context.Context, id uint) (*entities.FuelStation, error)
	ListStations(ctx context.Context) ([]*entities.FuelStation, error)
	NearbyStations(ctx context.Context, query *entities.NearbyStationsQuery) ([]*entities.FuelStation, error)
	SetFuelPrice(ctx context.Context, stationID uint, input *entities.CreateFuelPriceInput) (*entities.FuelPrice, error)
	GetFuelPrices(ctx context.Context, stationID uint) ([]*entities.FuelPrice, error)
}

// StationHandler handles fuel station endpoints
type StationHandler struct {
	stationUsecase stationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(stationUsecase *usecases.StationUsecase) *StationHandler {
	return &StationHandler{stationUsecase: stationUsecase}
}

// Create registers a new station
// POST /api/v1/stations
func (h *StationHandler) Create(c *gin.Context) {
	var input entities.CreateFuelStationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	station, err := h.stationUsecase.CreateStation(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, station)
}

// List returns all stations
// GET /api/v1/stations
func (h *StationHandler) List(c *gin.Context) {
	stations, err := h.stationUsecase.ListStations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if stations == nil {
		stations = []*entities.FuelStation{}
	}

	response.Success(c, http.StatusOK, gin.H{"stations": stations})
}

// Nearby returns stations within a radius of a point
// GET /api/v1/stations/nearby?lat=&lng=&radius=
func (h *StationHandler) Nearby(c *gin.Context) {
	var query entities.NearbyStationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	stations, err := h.stationUsecase.NearbyStations(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	if stations == nil {
		stations = []*entities.FuelStation{}
	}

	response.Success(c, http.StatusOK, gin.H{"stations": stations})
}

// Get returns one station with its price list
// GET /api/v1/stations/:id
func (h *StationHandler) Get(c *gin.Context) {
	stationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	station, err := h.stationUsecase.GetStation(c.Request.Context(), stationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, station)
}

// GetPrices returns a station's price list
// GET /api/v1/stations/:id/prices
func (h *StationHandler) GetPrices(c *gin.Context) {
	stationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	prices, err := h.stationUsecase.GetFuelPrices(c.Request.Context(), stationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if prices == nil {
		prices = []*entities.FuelPrice{}
	}

	response.Success(c, http.StatusOK, gin.H{"prices": prices})
}

// SetPrice publishes a price list entry
// POST /api/v1/stations/:id/prices
func (h *StationHandler) SetPrice(c *gin.Context) {
	stationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input entities.CreateFuelPriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	price, err := h.stationUsecase.SetFuelPrice(c.Request.Context(), stationID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, price)
}
