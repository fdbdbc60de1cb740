package catalog

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tourbook/internal/repository"

	"github.com/gin-gonic/gin"

	"tourbook/internal/pkg/response"
)

const maxImageBytes = 5 << 20

type Handler struct {
	service    *Service
	uploadRoot string
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, uploadRoot: "./uploads"}
}

// RegisterPublicRoutes mounts read-only catalog browsing.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/transport-providers", h.ListTransportProviders)
	r.GET("/transport-providers/:id", h.GetTransportProvider)
	r.GET("/accommodations", h.ListAccommodations)
	r.GET("/accommodations/:id", h.GetAccommodation)
	r.GET("/activities", h.ListActivities)
	r.GET("/activities/:id", h.GetActivity)
	r.GET("/locations", h.ListLocations)
	r.GET("/locations/:id", h.GetLocation)
}

// RegisterAdminRoutes mounts the mutating endpoints; callers gate them
// behind the admin middleware.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/transport-providers", h.CreateTransportProvider)
	r.PUT("/transport-providers/:id", h.UpdateTransportProvider)
	r.DELETE("/transport-providers/:id", h.DeleteTransportProvider)
	r.PUT("/transport-providers/:id/availability", h.SetTransportProviderAvailability)
	r.POST("/transport-providers/:id/images", h.UploadTransportProviderImages)

	r.POST("/accommodations", h.CreateAccommodation)
	r.PUT("/accommodations/:id", h.UpdateAccommodation)
	r.DELETE("/accommodations/:id", h.DeleteAccommodation)
	r.PUT("/accommodations/:id/availability", h.SetAccommodationAvailability)
	r.POST("/accommodations/:id/images", h.UploadAccommodationImages)

	r.POST("/activities", h.CreateActivity)
	r.PUT("/activities/:id", h.UpdateActivity)
	r.DELETE("/activities/:id", h.DeleteActivity)
	r.PUT("/activities/:id/availability", h.SetActivityAvailability)
	r.POST("/activities/:id/images", h.UploadActivityImages)

	r.POST("/locations", h.CreateLocation)
	r.PUT("/locations/:id", h.UpdateLocation)
	r.DELETE("/locations/:id", h.DeleteLocation)
	r.PUT("/locations/:id/availability", h.SetLocationAvailability)
	r.POST("/locations/:id/images", h.UploadLocationImages)
}

func parseFilters(c *gin.Context) repository.CatalogFilters {
	f := repository.CatalogFilters{
		City: c.Query("city"),
	}
	if c.Query("available") == "true" {
		f.AvailableOnly = true
	}

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	f.Limit = limit

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 1 {
		f.Offset = (page - 1) * limit
	}
	return f
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog item not found")
	case errors.Is(err, ErrTooManyFiles):
		response.Error(c, http.StatusBadRequest, "TOO_MANY_IMAGES", err.Error())
	case errors.Is(err, ErrBadImageType), errors.Is(err, ErrImageTooBig):
		response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

/* ---------- TRANSPORT PROVIDERS ---------- */

func (h *Handler) ListTransportProviders(c *gin.Context) {
	items, total, err := h.service.ListTransportProviders(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) GetTransportProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.service.GetTransportProvider(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) CreateTransportProvider(c *gin.Context) {
	var req CreateTransportProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	p, err := h.service.CreateTransportProvider(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) UpdateTransportProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateTransportProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	p, err := h.service.UpdateTransportProvider(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeleteTransportProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTransportProvider(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetTransportProviderAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Availability == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "availability is required")
		return
	}
	p, err := h.service.SetTransportProviderAvailability(c.Request.Context(), id, *req.Availability)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) UploadTransportProviderImages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	urls, paths, ok := h.saveImages(c, "transport-providers", id)
	if !ok {
		return
	}
	p, err := h.service.AddTransportProviderImages(c.Request.Context(), id, urls)
	if err != nil {
		discardImages(paths)
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

/* ---------- ACCOMMODATIONS ---------- */

func (h *Handler) ListAccommodations(c *gin.Context) {
	items, total, err := h.service.ListAccommodations(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) GetAccommodation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.service.GetAccommodation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) CreateAccommodation(c *gin.Context) {
	var req CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	a, err := h.service.CreateAccommodation(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) UpdateAccommodation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	a, err := h.service.UpdateAccommodation(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) DeleteAccommodation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAccommodation(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetAccommodationAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Availability == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "availability is required")
		return
	}
	a, err := h.service.SetAccommodationAvailability(c.Request.Context(), id, *req.Availability)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) UploadAccommodationImages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	urls, paths, ok := h.saveImages(c, "accommodations", id)
	if !ok {
		return
	}
	a, err := h.service.AddAccommodationImages(c.Request.Context(), id, urls)
	if err != nil {
		discardImages(paths)
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

/* ---------- ACTIVITIES ---------- */

func (h *Handler) ListActivities(c *gin.Context) {
	items, total, err := h.service.ListActivities(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) GetActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.service.GetActivity(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	a, err := h.service.CreateActivity(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	a, err := h.service.UpdateActivity(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteActivity(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetActivityAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Availability == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "availability is required")
		return
	}
	a, err := h.service.SetActivityAvailability(c.Request.Context(), id, *req.Availability)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) UploadActivityImages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	urls, paths, ok := h.saveImages(c, "activities", id)
	if !ok {
		return
	}
	a, err := h.service.AddActivityImages(c.Request.Context(), id, urls)
	if err != nil {
		discardImages(paths)
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

/* ---------- LOCATIONS ---------- */

func (h *Handler) ListLocations(c *gin.Context) {
	items, total, err := h.service.ListLocations(c.Request.Context(), parseFilters(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) GetLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	l, err := h.service.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	l, err := h.service.CreateLocation(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, l)
}

func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	l, err := h.service.UpdateLocation(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteLocation(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetLocationAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Availability == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "availability is required")
		return
	}
	l, err := h.service.SetLocationAvailability(c.Request.Context(), id, *req.Availability)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) UploadLocationImages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	urls, paths, ok := h.saveImages(c, "locations", id)
	if !ok {
		return
	}
	l, err := h.service.AddLocationImages(c.Request.Context(), id, urls)
	if err != nil {
		discardImages(paths)
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

/* ---------- IMAGE UPLOAD ---------- */

// saveImages validates and stores multipart "images" files, returning the
// public URLs and the on-disk paths so a rejected upload can be discarded.
// Writes the error response itself on failure.
func (h *Handler) saveImages(c *gin.Context, kind string, id int64) (urls, paths []string, ok bool) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse multipart form")
		return nil, nil, false
	}

	files := c.Request.MultipartForm.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No images uploaded")
		return nil, nil, false
	}
	if len(files) > maxImagesPerItem {
		response.Error(c, http.StatusBadRequest, "TOO_MANY_IMAGES", ErrTooManyFiles.Error())
		return nil, nil, false
	}

	for _, file := range files {
		if err := checkImage(file); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
			return nil, nil, false
		}
	}

	uploadDir := fmt.Sprintf("%s/%s/%d", h.uploadRoot, kind, id)
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to create directory")
		return nil, nil, false
	}

	for _, file := range files {
		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
		savePath := filepath.Join(uploadDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			discardImages(paths)
			response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save image")
			return nil, nil, false
		}
		paths = append(paths, savePath)
		urls = append(urls, fmt.Sprintf("/static/%s/%d/%s", kind, id, filename))
	}
	return urls, paths, true
}

// discardImages removes files stored for an upload the service rejected,
// so the total-cap check cannot leave orphans on disk.
func discardImages(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}

func checkImage(file *multipart.FileHeader) error {
	if file.Size > maxImageBytes {
		return ErrImageTooBig
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return ErrBadImageType
	}
	switch file.Header.Get("Content-Type") {
	case "image/jpeg", "image/png":
	default:
		return ErrBadImageType
	}
	return nil
}
