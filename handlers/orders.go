package handlers

import (
	"net/http"

	"restaurant-catalog-api/catalog"

	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	OrderType     string `json:"orderType"`
	Items         []struct {
		MealID   uint  `json:"mealId" binding:"required"`
		Quantity int   `json:"quantity" binding:"required,min=1"`
		SizeID   *uint `json:"sizeId"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder handles POST /orders. Meal names and prices are frozen into the
// order items at placement time.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := catalog.OrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, catalog.OrderItemInput{
			MealID:   item.MealID,
			Quantity: item.Quantity,
			SizeID:   item.SizeID,
		})
	}

	order, err := h.Catalog.PlaceOrder(in)
	if err != nil {
		writeError(c, err, "Failed to place order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /orders?status= with a per-status summary
func (h *Handler) ListOrders(c *gin.Context) {
	orders, summary, err := h.Catalog.ListOrders(c.Query("status"))
	if err != nil {
		writeError(c, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}
