package httpserver

import (
	"errors"
	"net/http"

	"buildmart/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps service and repository errors onto HTTP statuses. The
// insufficient-stock case names the offending product so the operator can
// fix the cart and retry.
func respondError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	var insufficient *domain.InsufficientStockError

	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "insufficient stock",
			"productId": insufficient.ProductID,
		})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrStockLimitExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": "requested quantity exceeds available stock"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
