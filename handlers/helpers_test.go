package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"liquor-store-api/config"
	"liquor-store-api/models"
	"liquor-store-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter points the global DB at a fresh in-memory sqlite database
// and returns a router with the full route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// :memory: is per-connection; pin the pool to one so every query
	// sees the same database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Liquor{}, &models.Order{}))

	config.DB = db
	config.AdminPassword = "test-admin-secret"
	config.AdminPasswordHash = ""

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// seedLiquor inserts a catalog item directly, with an explicit creation
// time so newest-first ordering is deterministic in tests.
func seedLiquor(t *testing.T, name, brand string, category models.LiquorCategory, price float64, createdAt time.Time) models.Liquor {
	t.Helper()
	liquor := models.Liquor{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Price:       price,
		IsAvailable: true,
		CreatedAt:   createdAt,
	}
	require.NoError(t, config.DB.Create(&liquor).Error)
	return liquor
}

func seedUser(t *testing.T, name, mobileNumber string) models.User {
	t.Helper()
	user := models.User{Name: name, MobileNumber: mobileNumber}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func seedOrder(t *testing.T, userID, liquorID uint, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		Reference: "ref-" + createdAt.Format("150405.000000000"),
		UserID:    userID,
		LiquorID:  liquorID,
		Status:    models.StatusPending,
		CreatedAt: createdAt,
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/auth/admin/login", gin.H{"password": "test-admin-secret"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
