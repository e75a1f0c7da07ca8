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
	"fuelpass.backend/pkg/utils"
)

type terminalService interface {
	ScanTag(ctx context.Context, input *entities.RFIDScanInput) (*entities.RFIDScanResult, error)
}

type settlementService interface {
	CompleteFuelPurchase(ctx context.Context, input *entities.CompleteTransactionInput) (*entities.Transaction, error)
}

// TerminalHandler handles station terminal endpoints
type TerminalHandler struct {
	terminalUsecase   terminalService
	settlementUsecase settlementService
	txnUsecase        transactionService
}

// NewTerminalHandler creates a new terminal handler
func NewTerminalHandler(
	terminalUsecase *usecases.TerminalUsecase,
	settlementUsecase *usecases.SettlementUsecase,
	txnUsecase *usecases.TransactionUsecase,
) *TerminalHandler {
	return &TerminalHandler{
		terminalUsecase:   terminalUsecase,
		settlementUsecase: settlementUsecase,
		txnUsecase:        txnUsecase,
	}
}

// ScanTag resolves a scanned RFID tag
// POST /api/v1/station/rfid-scan
func (h *TerminalHandler) ScanTag(c *gin.Context) {
	var input entities.RFIDScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.terminalUsecase.ScanTag(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CompleteTransaction settles a purchase at the pump
// POST /api/v1/station/complete-transaction
func (h *TerminalHandler) CompleteTransaction(c *gin.Context) {
	var input entities.CompleteTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	txn, err := h.settlementUsecase.CompleteFuelPurchase(c.Request.Context(), &input)
	if err != nil {
		middleware.SettlementsTotal.WithLabelValues("purchase", "failure").Inc()
		response.Error(c, err)
		return
	}
	middleware.SettlementsTotal.WithLabelValues("purchase", "success").Inc()

	response.Success(c, http.StatusCreated, txn)
}

// StationTransactions returns a station's settlement history
// GET /api/v1/station/:id/transactions?page=&limit=
func (h *TerminalHandler) StationTransactions(c *gin.Context) {
	stationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	params := paginationFromQuery(c)
	txns, total, err := h.txnUsecase.GetStationTransactions(c.Request.Context(), stationID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if txns == nil {
		txns = []*entities.Transaction{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": txns,
		"pagination":   utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
