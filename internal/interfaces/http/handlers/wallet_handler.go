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

type walletService interface {
	GetWallet(ctx context.Context, userID uint) (*entities.Wallet, error)
	UpdateSettings(ctx context.Context, userID uint, input *entities.WalletSettingsInput) (*entities.Wallet, error)
}

type topUpService interface {
	TopUp(ctx context.Context, userID uint, input *entities.TopUpInput) (*entities.Wallet, *entities.Transaction, error)
}

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	walletUsecase     walletService
	settlementUsecase topUpService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase, settlementUsecase *usecases.SettlementUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase, settlementUsecase: settlementUsecase}
}

// GetWallet returns the user's wallet
// GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, wallet)
}

// TopUp credits the user's wallet
// POST /api/v1/wallet/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.TopUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, txn, err := h.settlementUsecase.TopUp(c.Request.Context(), userID, &input)
	if err != nil {
		middleware.SettlementsTotal.WithLabelValues("topup", "failure").Inc()
		response.Error(c, err)
		return
	}
	middleware.SettlementsTotal.WithLabelValues("topup", "success").Inc()

	response.Success(c, http.StatusOK, gin.H{
		"message":     "Wallet topped up successfully",
		"wallet":      wallet,
		"transaction": txn,
	})
}

// UpdateSettings replaces the wallet's auto-reload configuration
// PUT /api/v1/wallet/settings
func (h *WalletHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.WalletSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, err := h.walletUsecase.UpdateSettings(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, wallet)
}
