package httpserver

import (
	"net/http"

	"buildmart/internal/domain"
	"buildmart/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

type posItem struct {
	domain.InventoryItem
	PriceDisplay string `json:"priceDisplay"`
	LowStock     bool   `json:"lowStock"`
}

// posInventoryHandler lists sellable items for the POS offer grid; anything
// with zero stock never reaches the cart.
func posInventoryHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListSellable(c.Request.Context(), c.Query("search"))
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]posItem, 0, len(items))
		for _, item := range items {
			out = append(out, posItem{
				InventoryItem: item,
				PriceDisplay:  domain.FormatINR(item.SellingPricePaise),
				LowStock:      item.LowStock(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func checkoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
			return
		}
		if op := currentOperator(c); op != nil {
			in.OperatorID = op.ID
		}

		tx, err := svc.Checkout(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"transaction":  tx,
			"totalDisplay": domain.FormatINR(tx.TotalAmountPaise),
		})
	}
}
