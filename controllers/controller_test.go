package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kurniasari-api/config"
	"kurniasari-api/models"
	"kurniasari-api/routes"
	"kurniasari-api/utils"
)

func setupRouter(t *testing.T, midtransURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	config.Log = zap.NewNop()
	config.Redis = nil
	config.App = config.AppConfig{
		JWTSecret:       "test-secret",
		MidtransBaseURL: midtransURL,
		GatewayTimeout:  5 * time.Second,
		SyncRateLimit:   100,
		SyncRateWindow:  time.Minute,
	}

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSyncPaymentStatusEndpoint(t *testing.T) {
	midtrans := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"order_id":"ORDER-1","transaction_status":"settlement","gross_amount":"100000.00","transaction_time":"2025-08-29 20:15:00"}`))
	}))
	defer midtrans.Close()

	r := setupRouter(t, midtrans.URL)
	require.NoError(t, config.DB.Create(&models.Order{
		OrderNumber: "ORDER-1", CustomerName: "Test", PaymentStatus: models.PaymentPending,
	}).Error)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/admin/orders/ORDER-1/sync-payment-status", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "paid", body["payment_status"])
	assert.Equal(t, "settlement", body["transaction_status"])

	// unknown order
	w = doJSON(r, http.MethodPost, "/api/admin/orders/ORDER-NOPE/sync-payment-status", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// no token
	w = doJSON(r, http.MethodPost, "/api/admin/orders/ORDER-1/sync-payment-status", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSyncPaymentStatusGatewayDown(t *testing.T) {
	midtrans := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer midtrans.Close()

	r := setupRouter(t, midtrans.URL)
	require.NoError(t, config.DB.Create(&models.Order{
		OrderNumber: "ORDER-1", CustomerName: "Test", PaymentStatus: models.PaymentPending,
	}).Error)

	w := doJSON(r, http.MethodPost, "/api/admin/orders/ORDER-1/sync-payment-status", adminToken(t), nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAssignEndpoint(t *testing.T) {
	r := setupRouter(t, "http://unused")

	outlet := models.Outlet{Name: "Outlet A", Status: models.OutletActive}
	require.NoError(t, config.DB.Create(&outlet).Error)
	deliveryman := models.User{Username: "kurir_a", Password: "x", Role: models.RoleDeliveryman, OutletID: &outlet.ID}
	require.NoError(t, config.DB.Create(&deliveryman).Error)
	require.NoError(t, config.DB.Create(&models.Order{
		OrderNumber: "ORDER-1", CustomerName: "Test", PaymentStatus: models.PaymentPaid,
	}).Error)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/admin/orders/ORDER-1/assign", token,
		gin.H{"deliveryman_id": deliveryman.ID, "outlet_id": outlet.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// second assign without force conflicts
	w = doJSON(r, http.MethodPost, "/api/admin/orders/ORDER-1/assign", token,
		gin.H{"deliveryman_id": deliveryman.ID, "outlet_id": outlet.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssignmentOptionsEndpoint(t *testing.T) {
	r := setupRouter(t, "http://unused")

	active := models.Outlet{Name: "Branch Y", Status: models.OutletActive}
	require.NoError(t, config.DB.Create(&active).Error)
	require.NoError(t, config.DB.Create(&models.Outlet{Name: "Branch X", Status: models.OutletInactive}).Error)

	w := doJSON(r, http.MethodGet, "/api/assignment-options", adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Outlets []models.Outlet `json:"outlets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Outlets, 1)
	assert.Equal(t, "Branch Y", body.Outlets[0].Name)
}
