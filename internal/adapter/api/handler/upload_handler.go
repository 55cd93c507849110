package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"carvendor/internal/infrastructure/media"
	"carvendor/pkg/errors"
	"carvendor/pkg/response"
)

type UploadHandler struct {
	media        *media.Client
	maxSizeBytes int64
}

func NewUploadHandler(mediaClient *media.Client, maxSizeMB int64) *UploadHandler {
	return &UploadHandler{
		media:        mediaClient,
		maxSizeBytes: maxSizeMB * 1024 * 1024,
	}
}

// Upload accepts a multipart form with one or more files under the "files"
// field and pushes them to the media CDN. All files succeed or the whole
// batch fails.
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return response.Error(c, errors.BadRequest("No files provided", nil))
	}

	files := make([]media.File, 0, len(headers))
	for _, header := range headers {
		if header.Size > h.maxSizeBytes {
			return response.Error(c, errors.BadRequest(
				fmt.Sprintf("File %s exceeds the %d MB limit", header.Filename, h.maxSizeBytes/(1024*1024)), nil))
		}

		src, err := header.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Unreadable file in form", err))
		}
		defer src.Close()

		files = append(files, media.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      src,
		})
	}

	results, err := h.media.UploadMany(c.Request().Context(), files)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"files": results,
	})
}
