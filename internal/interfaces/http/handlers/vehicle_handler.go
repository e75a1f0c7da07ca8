package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/interfaces/http/middleware"
	"fuelpass.backend/internal/interfaces/http/response"
	"fuelpass.backend/internal/usecases"
)

type vehicleService interface {
	CreateVehicle(ctx context.Context, userID uint, input *entities.CreateVehicleInput) (*entities.Vehicle, error)
	GetVehicle(ctx context.Context, userID, vehicleID uint) (*entities.Vehicle, error)
	ListVehicles(ctx context.Context, userID uint) ([]*entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, userID, vehicleID uint, input *entities.UpdateVehicleInput) (*entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, userID, vehicleID uint) error
	AssignRFIDTag(ctx context.Context, userID, vehicleID uint) (*entities.RFIDTag, error)
}

// VehicleHandler handles vehicle endpoints
type VehicleHandler struct {
	vehicleUsecase vehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleUsecase *usecases.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{vehicleUsecase: vehicleUsecase}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// Create registers a vehicle
// POST /api/v1/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.vehicleUsecase.CreateVehicle(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, vehicle)
}

// List returns the user's vehicles
// GET /api/v1/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	vehicles, err := h.vehicleUsecase.ListVehicles(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if vehicles == nil {
		vehicles = []*entities.Vehicle{}
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

// Get returns one vehicle
// GET /api/v1/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	vehicleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleUsecase.GetVehicle(c.Request.Context(), userID, vehicleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, vehicle)
}

// Update updates a vehicle
// PUT /api/v1/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	vehicleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.vehicleUsecase.UpdateVehicle(c.Request.Context(), userID, vehicleID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, vehicle)
}

// Delete removes a vehicle
// DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	vehicleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleUsecase.DeleteVehicle(c.Request.Context(), userID, vehicleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// AssignRFIDTag issues an RFID tag for the vehicle
// POST /api/v1/vehicles/:id/rfid-tag
func (h *VehicleHandler) AssignRFIDTag(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	vehicleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := h.vehicleUsecase.AssignRFIDTag(c.Request.Context(), userID, vehicleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tag)
}
