package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/interfaces/http/middleware"
	"fuelpass.backend/internal/interfaces/http/response"
	"fuelpass.backend/internal/usecases"
)

type paymentMethodService interface {
	AddPaymentMethod(ctx context.Context, userID uint, input *entities.CreatePaymentMethodInput) (*entities.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, userID uint) ([]*entities.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, userID, methodID uint) error
}

// PaymentMethodHandler handles payment method endpoints
type PaymentMethodHandler struct {
	pmUsecase paymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(pmUsecase *usecases.PaymentMethodUsecase) *PaymentMethodHandler {
	return &PaymentMethodHandler{pmUsecase: pmUsecase}
}

// Create stores a payment instrument
// POST /api/v1/payment-methods
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreatePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	method, err := h.pmUsecase.AddPaymentMethod(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, method)
}

// List returns the user's payment instruments
// GET /api/v1/payment-methods
func (h *PaymentMethodHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	methods, err := h.pmUsecase.ListPaymentMethods(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if methods == nil {
		methods = []*entities.PaymentMethod{}
	}

	response.Success(c, http.StatusOK, gin.H{"paymentMethods": methods})
}

// Delete removes a payment instrument
// DELETE /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	methodID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.pmUsecase.DeletePaymentMethod(c.Request.Context(), userID, methodID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payment method removed"})
}
