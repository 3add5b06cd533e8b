package handlers

import (
	"errors"
	"net/http"

	"liquor-store-api/config"
	"liquor-store-api/middleware"
	"liquor-store-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login upserts a customer identity keyed by mobile number. Re-login with
// the same number updates the name but keeps the record and its admin flag.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile number and name are required"})
		return
	}

	user, err := upsertUser(req.MobileNumber, req.Name, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"mobileNumber": user.MobileNumber,
		"isAdmin":      user.IsAdmin,
		"message":      "Welcome! You are logged in",
	})
}

// AdminLogin checks the shared admin secret and returns the reserved admin
// identity, created lazily on first success, plus a dashboard token.
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if !config.AdminPasswordMatches(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
		return
	}

	admin, err := upsertUser(models.AdminMobileNumber, "Admin", true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin profile"})
		return
	}

	token, err := middleware.GenerateToken(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           admin.ID,
		"name":         admin.Name,
		"mobileNumber": admin.MobileNumber,
		"isAdmin":      true,
		"token":        token,
		"message":      "Admin access granted",
	})
}

// upsertUser finds a user by mobile number and refreshes the name, or
// creates the record. The admin flag is only ever raised, never cleared,
// so an elevated identity survives a plain re-login.
func upsertUser(mobileNumber, name string, isAdmin bool) (*models.User, error) {
	var user models.User
	err := config.DB.Where("mobile_number = ?", mobileNumber).First(&user).Error
	switch {
	case err == nil:
		update := map[string]interface{}{"name": name}
		if isAdmin {
			update["is_admin"] = true
		}
		if err := config.DB.Model(&user).Updates(update).Error; err != nil {
			return nil, err
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Name: name, MobileNumber: mobileNumber, IsAdmin: isAdmin}
		if err := config.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	default:
		return nil, err
	}
}
