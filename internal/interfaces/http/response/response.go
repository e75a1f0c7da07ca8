package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "fuelpass.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error onto an HTTP response
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrInsufficientBalance):
		return domainerrors.InsufficientBalance("insufficient wallet balance")
	case errors.Is(err, domainerrors.ErrTagInactive):
		return domainerrors.BadRequest("rfid tag is not active")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password", err)
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("token has expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	default:
		return domainerrors.InternalError(err)
	}
}
