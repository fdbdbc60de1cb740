package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourbook/internal/database"
	"tourbook/internal/domain"
	"tourbook/internal/middleware"
	"tourbook/internal/modules/admin"
	"tourbook/internal/modules/auth"
	"tourbook/internal/modules/booking"
	"tourbook/internal/modules/catalog"
	jwtsvc "tourbook/internal/pkg/jwt"
	"tourbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
	adminID    int64
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.TransportProvider{},
		&domain.Accommodation{},
		&domain.Activity{},
		&domain.Location{},
		&domain.Booking{},
	}
	for _, model := range models {
		require.NoError(t, db.AutoMigrate(model), fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	providerRepo := repository.NewTransportProviderRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	catalogReader := repository.NewCatalog(providerRepo, accommodationRepo, activityRepo, locationRepo)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(providerRepo, accommodationRepo, activityRepo, locationRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, catalogReader))
	adminHandler := admin.NewHandler(admin.NewService(bookingRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	authHandler.RegisterPublicRoutes(api)
	catalogHandler.RegisterPublicRoutes(api)

	bookingPublic := api.Group("")
	bookingPublic.Use(middleware.OptionalJWTAuth(jwtService))
	bookingHandler.RegisterPublicRoutes(bookingPublic)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)

		adminGroup := protected.Group("")
		adminGroup.Use(middleware.AdminOnly())
		{
			authHandler.RegisterAdminRoutes(adminGroup)
			catalogHandler.RegisterAdminRoutes(adminGroup)
			bookingHandler.RegisterAdminRoutes(adminGroup)
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	adminUser := &domain.User{
		Username:     "admin",
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, userRepo.Create(context.Background(), adminUser), "Failed to create admin user")

	return &E2ETestSuite{
		router:     r,
		db:         db,
		jwtService: jwtService,
		adminID:    adminUser.ID,
	}
}

func (s *E2ETestSuite) adminToken(t *testing.T) string {
	token, err := s.jwtService.GenerateToken(s.adminID, string(domain.RoleAdmin))
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to parse response: %s", w.Body.String())
	return &resp
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// =============================================================================
// Flow 1: Registration and authentication
// =============================================================================

func TestFlow1_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	var token string

	t.Run("POST /api/auth/register", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/register", map[string]interface{}{
			"username": "jane",
			"email":    "jane@test.com",
			"password": "Password123!",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("POST /api/auth/register duplicate email", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/register", map[string]interface{}{
			"username": "jane2",
			"email":    "jane@test.com",
			"password": "Password123!",
		}, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
	})

	t.Run("POST /api/auth/login", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "jane@test.com",
			"password": "Password123!",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		token = resp.Data["token"].(string)
	})

	t.Run("GET /api/auth/profile", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/auth/profile", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "jane@test.com", resp.Data["email"])
	})

	t.Run("GET /api/auth/profile without token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/auth/profile", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 2: Catalog management and guest booking
// =============================================================================

func TestFlow2_CatalogAndBooking(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.adminToken(t)

	var providerID float64

	t.Run("POST /api/transport-providers as admin", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/transport-providers", map[string]interface{}{
			"name":        "City Shuttle",
			"vehicleType": "minibus",
			"city":        "Astana",
			"price":       50.0,
			"currency":    "USD",
			"seats":       4,
		}, adminToken)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		providerID = resp.Data["id"].(float64)
	})

	t.Run("POST /api/transport-providers without admin token", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/transport-providers", map[string]interface{}{
			"name": "Rogue Shuttle", "price": 1.0, "seats": 2,
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /api/transport-providers is public", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/transport-providers", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	var bookingID float64

	t.Run("POST /api/bookings computes price and pending statuses", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"providerId":         providerID,
			"customerName":       "Jane Traveler",
			"customerEmail":      "jane@example.com",
			"customerPhone":      "5551234567",
			"pickupLocation":     "Airport",
			"dropoffLocation":    "City Center",
			"bookingDate":        futureDate(7),
			"bookingTime":        "14:30",
			"numberOfPassengers": 2,
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := parseResponse(t, w)
		require.True(t, resp.Success)

		b := resp.Data["booking"].(map[string]interface{})
		assert.Equal(t, 100.0, b["totalPrice"])
		assert.Equal(t, "USD", b["currency"])
		assert.Equal(t, "pending", b["status"])
		assert.Equal(t, "pending", b["adminStatus"])
		assert.Equal(t, "pending", b["paymentStatus"])
		assert.Contains(t, b["bookingId"], "BK-")
		bookingID = b["id"].(float64)
	})

	t.Run("POST /api/bookings rejects passengers over seats", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"providerId":         providerID,
			"customerName":       "Jane Traveler",
			"customerEmail":      "jane@example.com",
			"customerPhone":      "5551234567",
			"pickupLocation":     "Airport",
			"dropoffLocation":    "City Center",
			"bookingDate":        futureDate(7),
			"bookingTime":        "14:30",
			"numberOfPassengers": 6,
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("PUT availability off then booking is rejected", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/transport-providers/%.0f/availability", providerID),
			map[string]interface{}{"availability": false}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"providerId":         providerID,
			"customerName":       "Jane Traveler",
			"customerEmail":      "jane@example.com",
			"customerPhone":      "5551234567",
			"pickupLocation":     "Airport",
			"dropoffLocation":    "City Center",
			"bookingDate":        futureDate(7),
			"bookingTime":        "14:30",
			"numberOfPassengers": 2,
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		w = suite.makeRequest("PUT", fmt.Sprintf("/api/transport-providers/%.0f/availability", providerID),
			map[string]interface{}{"availability": true}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /api/bookings/:id by numeric id", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/bookings/%.0f", bookingID), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /api/bookings/:id/pdf returns a document", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/bookings/%.0f/pdf", bookingID), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})
}

// =============================================================================
// Flow 3: Admin lifecycle — approve, pay, stats
// =============================================================================

func TestFlow3_AdminLifecycle(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.adminToken(t)

	// seed one activity and one booking through the API
	w := suite.makeRequest("POST", "/api/activities", map[string]interface{}{
		"name": "Canyon Hike", "price": 35.0, "city": "Almaty",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	activityID := parseResponse(t, w).Data["id"].(float64)

	w = suite.makeRequest("POST", "/api/bookings-extra/activity", map[string]interface{}{
		"activityId":    activityID,
		"customerName":  "Jane Traveler",
		"customerEmail": "jane@example.com",
		"customerPhone": "5551234567",
		"scheduledDate": futureDate(5),
		"participants":  3,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	b := parseResponse(t, w).Data["booking"].(map[string]interface{})
	bookingID := fmt.Sprintf("%.0f", b["id"].(float64))
	assert.Equal(t, 105.0, b["totalPrice"])

	t.Run("PUT pay before approval is rejected", func(t *testing.T) {
		w := suite.makeRequest("PUT", "/api/bookings/"+bookingID+"/pay", nil, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)
	})

	t.Run("PUT approve then pay", func(t *testing.T) {
		w := suite.makeRequest("PUT", "/api/bookings/"+bookingID+"/approve", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("PUT", "/api/bookings/"+bookingID+"/pay", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		booked := resp.Data["booking"].(map[string]interface{})
		assert.Equal(t, "paid", booked["paymentStatus"])
	})

	t.Run("PUT confirm on behalf of customer", func(t *testing.T) {
		w := suite.makeRequest("PUT", "/api/bookings/"+bookingID+"/confirm", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		booked := resp.Data["booking"].(map[string]interface{})
		assert.Equal(t, "confirmed", booked["status"])
		assert.Equal(t, true, booked["userConfirmed"])
	})

	t.Run("GET /api/admin/stats", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/admin/stats", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, 1.0, resp.Data["totalBookings"])
		assert.Equal(t, 1.0, resp.Data["approvedBookings"])
		assert.Equal(t, 105.0, resp.Data["paidRevenue"])
	})

	t.Run("GET /api/bookings requires admin", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = suite.makeRequest("GET", "/api/bookings", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DELETE /api/bookings/:id", func(t *testing.T) {
		w := suite.makeRequest("DELETE", "/api/bookings/"+bookingID, nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", "/api/bookings/"+bookingID, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Flow 4: Signed-in booking attribution
// =============================================================================

func TestFlow4_SignedInBookingAttribution(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.adminToken(t)

	var providerID float64

	t.Run("admin creates provider", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/transport-providers", map[string]interface{}{
			"name":        "Steppe Lines",
			"vehicleType": "bus",
			"city":        "Almaty",
			"price":       50.0,
			"currency":    "USD",
			"seats":       10,
		}, adminToken)

		require.Equal(t, http.StatusCreated, w.Code)
		providerID = parseResponse(t, w).Data["id"].(float64)
	})

	var userToken string
	var userID float64

	t.Run("register and identify traveler", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/register", map[string]interface{}{
			"username": "aset",
			"email":    "aset@test.com",
			"password": "Password123!",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
		userToken = parseResponse(t, w).Data["token"].(string)

		w = suite.makeRequest("GET", "/api/auth/profile", nil, userToken)
		require.Equal(t, http.StatusOK, w.Code)
		userID = parseResponse(t, w).Data["id"].(float64)
	})

	t.Run("booking with bearer token is attributed to the account", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"providerId":         providerID,
			"customerName":       "Aset Traveler",
			"customerEmail":      "aset@test.com",
			"customerPhone":      "5557654321",
			"pickupLocation":     "Hotel",
			"dropoffLocation":    "Airport",
			"bookingDate":        futureDate(5),
			"bookingTime":        "09:00",
			"numberOfPassengers": 2,
		}, userToken)

		require.Equal(t, http.StatusCreated, w.Code)
		b := parseResponse(t, w).Data["booking"].(map[string]interface{})
		assert.Equal(t, userID, b["userId"])
	})

	t.Run("guest booking stays unattributed", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"providerId":         providerID,
			"customerName":       "Walk-in Guest",
			"customerEmail":      "guest@example.com",
			"customerPhone":      "5550000000",
			"pickupLocation":     "Station",
			"dropoffLocation":    "Museum",
			"bookingDate":        futureDate(5),
			"bookingTime":        "11:00",
			"numberOfPassengers": 1,
		}, "")

		require.Equal(t, http.StatusCreated, w.Code)
		b := parseResponse(t, w).Data["booking"].(map[string]interface{})
		assert.Nil(t, b["userId"])
	})

	t.Run("GET /api/bookings/total/by-user counts the attributed booking", func(t *testing.T) {
		path := fmt.Sprintf("/api/bookings/total/by-user/%.0f", userID)
		w := suite.makeRequest("GET", path, nil, adminToken)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, 1.0, resp.Data["bookingCount"])
		assert.Equal(t, 100.0, resp.Data["totalSpent"])
	})
}
