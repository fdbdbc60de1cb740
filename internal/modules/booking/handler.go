package booking

import (
	"context"
	"errors"
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

// RegisterPublicRoutes mounts the customer-facing booking endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateTransportBooking)

	extra := rg.Group("/bookings-extra")
	{
		extra.POST("/accommodation", h.CreateAccommodationBooking)
		extra.POST("/activity", h.CreateActivityBooking)
		extra.POST("/location", h.CreateLocationBooking)
	}

	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings/:id/pdf", h.GetBookingPDF)
}

// RegisterAdminRoutes mounts the console endpoints (require admin role).
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/total/by-user/:userId", h.TotalByUser)
	rg.PUT("/bookings/:id/confirm", h.ConfirmBooking)
	rg.PUT("/bookings/:id/approve", h.ApproveBooking)
	rg.PUT("/bookings/:id/reject", h.RejectBooking)
	rg.PUT("/bookings/:id/pay", h.PayBooking)
	rg.PUT("/bookings/:id/status", h.UpdateBookingStatus)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) CreateTransportBooking(c *gin.Context) {
	var req CreateTransportBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateTransportBooking(c.Request.Context(), req, userIDFromContext(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CreateAccommodationBooking(c *gin.Context) {
	var req CreateAccommodationBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateAccommodationBooking(c.Request.Context(), req, userIDFromContext(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CreateActivityBooking(c *gin.Context) {
	var req CreateActivityBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateActivityBooking(c.Request.Context(), req, userIDFromContext(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CreateLocationBooking(c *gin.Context) {
	var req CreateLocationBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateLocationBooking(c.Request.Context(), req, userIDFromContext(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetBookingPDF(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	content, filename, err := h.service.ConfirmationPDF(c.Request.Context(), b.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", content)
}

func (h *Handler) ListBookings(c *gin.Context) {
	f := repository.BookingFilters{
		Status:        c.Query("status"),
		AdminStatus:   c.Query("adminStatus"),
		PaymentStatus: c.Query("paymentStatus"),
		Type:          c.Query("type"),
		Tag:           c.Query("tag"),
	}

	f.Limit = 50
	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= 200 {
			f.Limit = val
		}
	}
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	bookings, total, err := h.service.GetAll(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
	})
}

func (h *Handler) TotalByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	res, err := h.service.TotalByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	h.transition(c, h.service.Approve)
}

func (h *Handler) RejectBooking(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

func (h *Handler) PayBooking(c *gin.Context) {
	h.transition(c, h.service.Pay)
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.Booking, error)) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	b, err := fn(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, err
	}
	return id, nil
}

func userIDFromContext(c *gin.Context) *int64 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok && id > 0 {
			return &id
		}
	}
	return nil
}

func handleError(c *gin.Context, err error) {
	var fieldErrs FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking validation failed", fieldErrs)
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog item not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "NOT_AVAILABLE", "Item is not available for booking")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Could not allocate booking reference")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
