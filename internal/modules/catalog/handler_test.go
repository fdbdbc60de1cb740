package catalog

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, *Service, string) {
	service, _ := setupCatalog(t)

	root := t.TempDir()
	h := NewHandler(service)
	h.uploadRoot = root

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterAdminRoutes(r.Group("/api"))
	return r, service, root
}

func imagesForm(t *testing.T, names []string, contentType string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range names {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, name))
		if contentType != "" {
			hdr.Set("Content-Type", contentType)
		}
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func storedFiles(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadImages_RejectedByCapLeavesNoFiles(t *testing.T) {
	r, service, root := setupUploadRouter(t)

	p, err := service.CreateTransportProvider(context.Background(), CreateTransportProviderRequest{
		Name: "City Shuttle", Price: 50, Seats: 4,
		Images: []string{"/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg"},
	})
	require.NoError(t, err)

	body, contentType := imagesForm(t, []string{"e.png", "f.png"}, "image/png")
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/transport-providers/%d/images", p.ID), body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "TOO_MANY_IMAGES")

	itemDir := filepath.Join(root, "transport-providers", fmt.Sprint(p.ID))
	assert.Empty(t, storedFiles(t, itemDir), "rejected upload must not leave files on disk")

	got, err := service.GetTransportProvider(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 4)
}

func TestUploadImages_RequiresImageContentType(t *testing.T) {
	r, service, root := setupUploadRouter(t)

	p, err := service.CreateTransportProvider(context.Background(), CreateTransportProviderRequest{
		Name: "City Shuttle", Price: 50, Seats: 4,
	})
	require.NoError(t, err)

	for _, ct := range []string{"", "application/octet-stream"} {
		body, contentType := imagesForm(t, []string{"a.png"}, ct)
		req := httptest.NewRequest("POST", fmt.Sprintf("/api/transport-providers/%d/images", p.ID), body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "content type %q must be rejected", ct)
		assert.Contains(t, w.Body.String(), "INVALID_IMAGE")
	}

	itemDir := filepath.Join(root, "transport-providers", fmt.Sprint(p.ID))
	assert.Empty(t, storedFiles(t, itemDir))
}

func TestUploadImages_StoresAcceptedFiles(t *testing.T) {
	r, service, root := setupUploadRouter(t)

	p, err := service.CreateTransportProvider(context.Background(), CreateTransportProviderRequest{
		Name: "City Shuttle", Price: 50, Seats: 4,
	})
	require.NoError(t, err)

	body, contentType := imagesForm(t, []string{"a.png", "b.jpg"}, "image/png")
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/transport-providers/%d/images", p.ID), body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	itemDir := filepath.Join(root, "transport-providers", fmt.Sprint(p.ID))
	assert.Len(t, storedFiles(t, itemDir), 2)

	got, err := service.GetTransportProvider(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 2)
}
