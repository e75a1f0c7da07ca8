package usecases

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
	"fuelpass.backend/pkg/logger"
)

// SettlementUsecase coordinates every balance movement: wallet top-ups
// and fuel purchase completion. The debit and the transaction record are
// committed in one unit of work; notifications go out only after commit
// and are fire-and-forget.
type SettlementUsecase struct {
	uow         repositories.UnitOfWork
	walletRepo  repositories.WalletRepository
	txnRepo     repositories.TransactionRepository
	vehicleRepo repositories.VehicleRepository
	pmRepo      repositories.PaymentMethodRepository
	notifier    Notifier
}

// NewSettlementUsecase creates a new settlement usecase
func NewSettlementUsecase(
	uow repositories.UnitOfWork,
	walletRepo repositories.WalletRepository,
	txnRepo repositories.TransactionRepository,
	vehicleRepo repositories.VehicleRepository,
	pmRepo repositories.PaymentMethodRepository,
	notifier Notifier,
) *SettlementUsecase {
	return &SettlementUsecase{
		uow:         uow,
		walletRepo:  walletRepo,
		txnRepo:     txnRepo,
		vehicleRepo: vehicleRepo,
		pmRepo:      pmRepo,
		notifier:    notifier,
	}
}

// TopUp credits the user's wallet and records a completed top-up
// transaction atomically. The updated wallet and the record are returned.
func (u *SettlementUsecase) TopUp(ctx context.Context, userID uint, input *entities.TopUpInput) (*entities.Wallet, *entities.Transaction, error) {
	amount, err := parseAmount("amount", input.Amount)
	if err != nil {
		return nil, nil, err
	}

	if _, err := u.walletRepo.GetByUserID(ctx, userID); err != nil {
		return nil, nil, err
	}

	method, err := u.pmRepo.GetByID(ctx, input.PaymentMethodID)
	if err != nil {
		return nil, nil, err
	}
	if method.UserID != userID {
		return nil, nil, domainerrors.Forbidden("payment method belongs to another user")
	}

	txn := &entities.Transaction{
		TransactionID:   entities.NewTransactionID("TOP"),
		UserID:          userID,
		FuelType:        entities.FuelTypeNA,
		Quantity:        decimal.Zero,
		PricePerUnit:    decimal.Zero,
		TotalAmount:     amount,
		PaymentMethodID: null.UintFrom(input.PaymentMethodID),
		PaymentType:     entities.PaymentTypeTopUp,
		Status:          entities.TransactionStatusCompleted,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.walletRepo.Credit(txCtx, userID, amount); err != nil {
			return err
		}
		return u.txnRepo.Create(txCtx, txn)
	})
	if err != nil {
		return nil, nil, err
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	u.notifier.NotifyUser(userID, EventWalletUpdated, map[string]interface{}{
		"message":     "Wallet topped up successfully",
		"wallet":      wallet,
		"transaction": txn,
	})

	logger.Info(ctx, "wallet topped up",
		zap.Uint("userId", userID),
		zap.String("transactionId", txn.TransactionID),
		zap.String("amount", amount.StringFixed(2)),
	)
	return wallet, txn, nil
}

// RecordPurchase settles a fuel purchase submitted by the customer API.
// The vehicle must belong to the authenticated user.
func (u *SettlementUsecase) RecordPurchase(ctx context.Context, userID uint, input *entities.CreateTransactionInput) (*entities.Transaction, error) {
	vehicle, err := u.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, domainerrors.Forbidden("vehicle belongs to another user")
	}

	return u.settle(ctx, &entities.CompleteTransactionInput{
		UserID:          userID,
		VehicleID:       input.VehicleID,
		StationID:       input.StationID,
		FuelType:        input.FuelType,
		Quantity:        input.Quantity,
		PricePerUnit:    input.PricePerUnit,
		PaymentType:     input.PaymentType,
		PaymentMethodID: input.PaymentMethodID,
	})
}

// CompleteFuelPurchase settles a purchase submitted by a station terminal.
func (u *SettlementUsecase) CompleteFuelPurchase(ctx context.Context, input *entities.CompleteTransactionInput) (*entities.Transaction, error) {
	return u.settle(ctx, input)
}

func (u *SettlementUsecase) settle(ctx context.Context, input *entities.CompleteTransactionInput) (*entities.Transaction, error) {
	quantity, err := parseAmount("quantity", input.Quantity)
	if err != nil {
		return nil, err
	}
	pricePerUnit, err := parseAmount("pricePerUnit", input.PricePerUnit)
	if err != nil {
		return nil, err
	}
	totalAmount := quantity.Mul(pricePerUnit).Round(2)
	if !totalAmount.IsPositive() {
		return nil, domainerrors.BadRequest("total amount must be positive")
	}

	txn := &entities.Transaction{
		TransactionID: entities.NewTransactionID("FT"),
		UserID:        input.UserID,
		VehicleID:     null.UintFrom(input.VehicleID),
		StationID:     null.UintFrom(input.StationID),
		FuelType:      entities.FuelType(input.FuelType),
		Quantity:      quantity,
		PricePerUnit:  pricePerUnit,
		TotalAmount:   totalAmount,
		PaymentType:   entities.PaymentType(input.PaymentType),
		Status:        entities.TransactionStatusCompleted,
	}
	if input.PaymentMethodID != 0 {
		txn.PaymentMethodID = null.UintFrom(input.PaymentMethodID)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if txn.PaymentType == entities.PaymentTypeRFID {
			if err := u.walletRepo.DebitIfSufficient(txCtx, input.UserID, totalAmount); err != nil {
				return err
			}
		}
		return u.txnRepo.Create(txCtx, txn)
	})
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"message":     "Transaction completed",
		"transaction": txn,
	}
	u.notifier.NotifyUser(input.UserID, EventTransactionCompleted, payload)
	u.notifier.NotifyStation(input.StationID, EventTransactionCompleted, payload)

	logger.Info(ctx, "fuel purchase settled",
		zap.Uint("userId", input.UserID),
		zap.Uint("stationId", input.StationID),
		zap.String("transactionId", txn.TransactionID),
		zap.String("totalAmount", totalAmount.StringFixed(2)),
		zap.String("paymentType", string(txn.PaymentType)),
	)
	return txn, nil
}
