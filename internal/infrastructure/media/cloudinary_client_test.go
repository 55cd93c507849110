package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"carvendor/pkg/errors"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("demo", "unsigned-cars")
	client.baseURL = srv.URL
	return client
}

func TestUploadSendsContentTypeAndPreset(t *testing.T) {
	var partContentType, preset string

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		preset = r.FormValue("upload_preset")

		_, header, err := r.FormFile("file")
		assert.NoError(t, err)
		partContentType = header.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UploadResult{
			SecureURL: "https://res.cloudinary.com/demo/front.jpg",
			PublicID:  "cars/front",
			Width:     1200,
			Height:    800,
		})
	})

	results, err := client.UploadMany(context.Background(), []File{
		{Name: "front.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpegdata")},
	})

	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", partContentType)
	assert.Equal(t, "unsigned-cars", preset)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "cars/front", results[0].PublicID)
		assert.Equal(t, 1200, results[0].Width)
	}
}

func TestUploadManyFailsBatchOnError(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid preset"}}`, http.StatusBadRequest)
	})

	_, err := client.UploadMany(context.Background(), []File{
		{Name: "a.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("a")},
		{Name: "b.jpg", ContentType: "image/png", Reader: strings.NewReader("b")},
	})

	assert.True(t, errors.Is(err, "UPLOAD_FAILED"))
}
