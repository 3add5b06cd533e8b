package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"liquor-store-api/config"
	"liquor-store-api/models"

	"github.com/gin-gonic/gin"
)

// ListLiquors returns the public catalog: available items only, filtered
// by category, price bounds and name search, newest first
func ListLiquors(c *gin.Context) {
	var liquors []models.Liquor
	query := config.DB.Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if minPrice, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		query = query.Where("price <= ?", maxPrice)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Order("created_at desc").Find(&liquors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liquors"})
		return
	}
	c.JSON(http.StatusOK, liquors)
}

// GetLiquor returns a single liquor by id
func GetLiquor(c *gin.Context) {
	var liquor models.Liquor
	if err := config.DB.First(&liquor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Liquor not found"})
		return
	}
	c.JSON(http.StatusOK, liquor)
}

type CreateLiquorRequest struct {
	Name              string                `json:"name" binding:"required"`
	Brand             string                `json:"brand" binding:"required"`
	Category          models.LiquorCategory `json:"category" binding:"required"`
	AlcoholPercentage float64               `json:"alcoholPercentage" binding:"gte=0"`
	Price             *float64              `json:"price" binding:"required,gte=0"`
	ImageURL          string                `json:"imageUrl"`
	IsAvailable       *bool                 `json:"isAvailable"`
}

// CreateLiquor adds a new catalog item
func CreateLiquor(c *gin.Context) {
	var req CreateLiquorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: Whisky, Vodka, Rum, Beer, Wine, Gin, Tequila or Other"})
		return
	}

	liquor := models.Liquor{
		Name:              req.Name,
		Brand:             req.Brand,
		Category:          req.Category,
		AlcoholPercentage: req.AlcoholPercentage,
		Price:             *req.Price,
		ImageURL:          req.ImageURL,
		IsAvailable:       true,
	}

	if err := config.DB.Create(&liquor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create liquor"})
		return
	}
	// gorm drops zero values for defaulted columns on insert, so an
	// explicit false has to be written separately
	if req.IsAvailable != nil && !*req.IsAvailable {
		if err := config.DB.Model(&liquor).Update("is_available", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create liquor"})
			return
		}
	}
	c.JSON(http.StatusCreated, liquor)
}

// liquorColumns maps updatable JSON fields to their DB columns
var liquorColumns = map[string]string{
	"name":              "name",
	"brand":             "brand",
	"category":          "category",
	"alcoholPercentage": "alcohol_percentage",
	"price":             "price",
	"imageUrl":          "image_url",
	"isAvailable":       "is_available",
}

// UpdateLiquor merges the supplied fields into an existing item
func UpdateLiquor(c *gin.Context) {
	var liquor models.Liquor
	if err := config.DB.First(&liquor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Liquor not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	for k, v := range req {
		if col, ok := liquorColumns[k]; ok {
			update[col] = v
		}
	}
	if cat, ok := update["category"]; ok {
		s, isString := cat.(string)
		if !isString || !models.ValidCategory(models.LiquorCategory(s)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
	}

	if err := config.DB.Model(&liquor).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update liquor"})
		return
	}
	config.DB.First(&liquor, liquor.ID)
	c.JSON(http.StatusOK, liquor)
}

// DeleteLiquor removes a catalog item. Orders referencing it keep
// listing with a null liquor summary.
func DeleteLiquor(c *gin.Context) {
	var liquor models.Liquor
	if err := config.DB.First(&liquor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Liquor not found"})
		return
	}
	if err := config.DB.Delete(&liquor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete liquor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liquor removed"})
}
