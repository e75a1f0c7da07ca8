package usecases

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
)

// PaymentMethodUsecase handles stored payment instruments
type PaymentMethodUsecase struct {
	pmRepo repositories.PaymentMethodRepository
}

// NewPaymentMethodUsecase creates a new payment method usecase
func NewPaymentMethodUsecase(pmRepo repositories.PaymentMethodRepository) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{pmRepo: pmRepo}
}

// AddPaymentMethod validates the typed details and stores the instrument.
// The first method a user adds becomes the default.
func (u *PaymentMethodUsecase) AddPaymentMethod(ctx context.Context, userID uint, input *entities.CreatePaymentMethodInput) (*entities.PaymentMethod, error) {
	pmType := entities.PaymentMethodType(input.Type)
	details, err := entities.ParsePaymentMethodDetails(pmType, input.Details)
	if err != nil {
		return nil, err
	}

	existing, err := u.pmRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	method := &entities.PaymentMethod{
		UserID:    userID,
		Type:      pmType,
		Details:   details,
		IsDefault: input.IsDefault || len(existing) == 0,
	}
	if err := u.pmRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// ListPaymentMethods returns the user's stored instruments
func (u *PaymentMethodUsecase) ListPaymentMethods(ctx context.Context, userID uint) ([]*entities.PaymentMethod, error) {
	return u.pmRepo.GetByUserID(ctx, userID)
}

// DeletePaymentMethod removes an instrument, enforcing ownership
func (u *PaymentMethodUsecase) DeletePaymentMethod(ctx context.Context, userID, methodID uint) error {
	method, err := u.pmRepo.GetByID(ctx, methodID)
	if err != nil {
		return err
	}
	if method.UserID != userID {
		return domainerrors.Forbidden("payment method belongs to another user")
	}
	return u.pmRepo.Delete(ctx, methodID)
}
