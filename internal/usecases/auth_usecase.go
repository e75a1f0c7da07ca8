package usecases

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"fuelpass.backend/internal/domain/entities"
	domainerrors "fuelpass.backend/internal/domain/errors"
	"fuelpass.backend/internal/domain/repositories"
	"fuelpass.backend/pkg/crypto"
	"fuelpass.backend/pkg/jwt"
)

// AuthUsecase handles registration, login and token issuance
type AuthUsecase struct {
	uow        repositories.UnitOfWork
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		uow:        uow,
		userRepo:   userRepo,
		walletRepo: walletRepo,
		jwtService: jwtService,
	}
}

// Register creates a user account and its wallet (balance zero) in one
// unit of work.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.BadRequest("passwords do not match")
	}

	if _, err := u.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.Conflict("username already taken")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Conflict("email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         entities.UserRoleUser,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.walletRepo.Create(txCtx, &entities.Wallet{
			UserID:  user.ID,
			Balance: decimal.Zero,
		})
	})
	if err != nil {
		return nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// Login authenticates a user by username and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// GetMe returns the authenticated user's profile
func (u *AuthUsecase) GetMe(ctx context.Context, userID uint) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
