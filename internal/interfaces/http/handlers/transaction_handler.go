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
	"fuelpass.backend/pkg/utils"
)

type transactionService interface {
	GetUserTransactions(ctx context.Context, userID uint, limit, offset int) ([]*entities.Transaction, int64, error)
	GetStationTransactions(ctx context.Context, stationID uint, limit, offset int) ([]*entities.Transaction, int64, error)
}

type purchaseService interface {
	RecordPurchase(ctx context.Context, userID uint, input *entities.CreateTransactionInput) (*entities.Transaction, error)
}

// TransactionHandler handles transaction history and customer purchases
type TransactionHandler struct {
	txnUsecase        transactionService
	settlementUsecase purchaseService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnUsecase *usecases.TransactionUsecase, settlementUsecase *usecases.SettlementUsecase) *TransactionHandler {
	return &TransactionHandler{txnUsecase: txnUsecase, settlementUsecase: settlementUsecase}
}

func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return utils.GetPaginationParams(page, limit)
}

// List returns the user's transactions, newest first
// GET /api/v1/transactions?page=&limit=
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	params := paginationFromQuery(c)
	txns, total, err := h.txnUsecase.GetUserTransactions(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
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

// Create settles a purchase submitted by the customer
// POST /api/v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	txn, err := h.settlementUsecase.RecordPurchase(c.Request.Context(), userID, &input)
	if err != nil {
		middleware.SettlementsTotal.WithLabelValues("purchase", "failure").Inc()
		response.Error(c, err)
		return
	}
	middleware.SettlementsTotal.WithLabelValues("purchase", "success").Inc()

	response.Success(c, http.StatusCreated, txn)
}
