package usecases

import (
	"context"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
)

// TerminalUsecase handles station terminal operations: resolving a
// scanned RFID tag to the vehicle, owner and wallet balance.
type TerminalUsecase struct {
	tagRepo     repositories.RFIDTagRepository
	vehicleRepo repositories.VehicleRepository
	userRepo    repositories.UserRepository
	walletRepo  repositories.WalletRepository
}

// NewTerminalUsecase creates a new terminal usecase
func NewTerminalUsecase(
	tagRepo repositories.RFIDTagRepository,
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
) *TerminalUsecase {
	return &TerminalUsecase{
		tagRepo:     tagRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
	}
}

// ScanTag resolves a tag number to the data the terminal needs before
// starting a fuel transaction.
func (u *TerminalUsecase) ScanTag(ctx context.Context, input *entities.RFIDScanInput) (*entities.RFIDScanResult, error) {
	tag, err := u.tagRepo.GetByTagNumber(ctx, input.TagNumber)
	if err != nil {
		return nil, err
	}
	if tag.Status != entities.RFIDTagStatusActive {
		return nil, domainerrors.ErrTagInactive
	}
	if !tag.VehicleID.Valid {
		return nil, domainerrors.NotFound("tag is not assigned to a vehicle")
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, tag.VehicleID.Uint)
	if err != nil {
		return nil, err
	}

	owner, err := u.userRepo.GetByID(ctx, vehicle.UserID)
	if err != nil {
		return nil, err
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	return &entities.RFIDScanResult{
		Tag:     tag,
		Vehicle: vehicle,
		User: &entities.ScannedUser{
			ID:            owner.ID,
			Name:          owner.Name,
			WalletBalance: wallet.Balance.StringFixed(2),
		},
	}, nil
}
