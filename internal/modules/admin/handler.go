package admin

import (
	"net/http"
	"strconv"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/response"
	"tourbook/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/admin/bookings", h.ListBookings)
	r.GET("/admin/stats", h.GetStatistics)
}

func (h *Handler) ListBookings(c *gin.Context) {
	f := repository.BookingFilters{
		Status:        c.Query("status"),
		AdminStatus:   c.Query("adminStatus"),
		PaymentStatus: c.Query("paymentStatus"),
		Type:          c.Query("type"),
	}
	if c.Query("comprehensive") == "true" {
		f.Tag = domain.ComprehensiveTag
	}

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	f.Limit = limit
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 1 {
		f.Offset = (page - 1) * limit
	}

	bookings, total, err := h.service.ListBookings(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, BookingListResponse{Bookings: bookings, Total: total})
}

func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
