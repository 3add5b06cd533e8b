package handlers

import (
	"context"
	"net/http"

	"liquor-store-api/config"
	"liquor-store-api/models"
	"liquor-store-api/orderfeed"
	"liquor-store-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	LiquorID uint `json:"liquorId" binding:"required"`
}

// CreateOrder records a customer's interest in a liquor. Both references
// must resolve at creation time; afterwards the catalog may change freely.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and Liquor ID are required"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var liquor models.Liquor
	if err := config.DB.First(&liquor, req.LiquorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Liquor not found"})
		return
	}

	order := models.Order{
		Reference: uuid.NewString(),
		UserID:    user.ID,
		LiquorID:  liquor.ID,
		Status:    models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	config.DB.Preload("User").Preload("Liquor").First(&order, order.ID)
	c.JSON(http.StatusCreated, order.Joined(false))
}

// GetOrders returns all orders newest-first, joined with user and liquor
// summaries for the admin dashboard
func GetOrders(c *gin.Context) {
	orders, err := fetchJoinedOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. Only the forward
// pending → completed transition is accepted.
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"requested":      req.Status,
			"reason":         err.Error(),
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	config.DB.Preload("User").Preload("Liquor").First(&order, order.ID)
	c.JSON(http.StatusOK, order.Joined(true))
}

// StreamOrders pushes the joined order listing over SSE on the configured
// poll interval, replacing the client-side timer of the dashboard. The
// loop stops when the client disconnects.
func StreamOrders(c *gin.Context) {
	feed := orderfeed.New(func(ctx context.Context) ([]models.OrderResponse, error) {
		return fetchJoinedOrders()
	}, config.OrderPollInterval())
	snapshots := feed.Run(c.Request.Context())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// The request context is cancelled on disconnect, which closes the
	// snapshot channel and ends the loop.
	for snap := range snapshots {
		if snap.Err != nil {
			c.SSEvent("error", gin.H{"error": "Failed to fetch orders"})
		} else {
			c.SSEvent("orders", snap.Orders)
		}
		c.Writer.Flush()
	}
}

func fetchJoinedOrders() ([]models.OrderResponse, error) {
	var orders []models.Order
	err := config.DB.Preload("User").Preload("Liquor").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orders[i].Joined(true))
	}
	return responses, nil
}
