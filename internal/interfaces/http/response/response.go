package response

import (
	"errors"
	"net/http"

	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/gin-gonic/gin"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to an HTTP response. Usecases may return either
// an *AppError or a bare sentinel; both resolve to the right status code.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound),
		errors.Is(err, domainerrors.ErrUnknownBeneficiary):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrDuplicateOrder),
		errors.Is(err, domainerrors.ErrPersistenceConflict):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrOutOfStock),
		errors.Is(err, domainerrors.ErrInsufficientFunds),
		errors.Is(err, domainerrors.ErrInvalidPlan),
		errors.Is(err, domainerrors.ErrCyclicReferral):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrAccountSuspended):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
