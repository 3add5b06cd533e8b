package handlers

import (
	"net/http"

	"liquor-store-api/config"
	"liquor-store-api/models"

	"github.com/gin-gonic/gin"
)

// AdminListLiquors returns the full inventory including unavailable items,
// for the dashboard inventory tab
func AdminListLiquors(c *gin.Context) {
	var liquors []models.Liquor
	if err := config.DB.Order("created_at desc").Find(&liquors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liquors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(liquors), "liquors": liquors})
}

// AdminListUsers returns the user directory
func AdminListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminOrderSummary aggregates order counts by status for the dashboard
func AdminOrderSummary(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"pending":       summary[string(models.StatusPending)],
		"count":         len(orders),
	})
}
