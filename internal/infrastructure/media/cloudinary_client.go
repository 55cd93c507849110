package media

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"carvendor/pkg/errors"
	"carvendor/pkg/logger"
)

// UploadResult is what the media service returns for a stored image.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// File is a single image to upload.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

const defaultBaseURL = "https://api.cloudinary.com"

// Client uploads car images to Cloudinary using an unsigned upload preset.
type Client struct {
	http         *resty.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

func NewClient(cloudName, uploadPreset string) *Client {
	return &Client{
		http:         resty.New(),
		baseURL:      defaultBaseURL,
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
	}
}

// UploadMany uploads every file concurrently, one request per file. The
// batch succeeds only if every upload succeeds; the first failure fails
// the whole batch. Uploads that completed before the failure are not
// cleaned up.
func (c *Client) UploadMany(ctx context.Context, files []File) ([]UploadResult, error) {
	results := make([]UploadResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			result, err := c.upload(gctx, file)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Client) upload(ctx context.Context, file File) (UploadResult, error) {
	var result UploadResult

	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartField("file", file.Name, file.ContentType, file.Reader).
		SetFormData(map[string]string{"upload_preset": c.uploadPreset}).
		SetResult(&result).
		Post(c.endpoint("upload"))
	if err != nil {
		return UploadResult{}, errors.UploadFailed("Failed to reach media service", err)
	}

	if resp.IsError() {
		return UploadResult{}, errors.UploadFailed(
			fmt.Sprintf("Image upload failed: %s", resp.Status()), nil)
	}

	return result, nil
}

// Delete removes an image by its public id. Best effort: callers treat a
// failure as a logged warning, not an error.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"public_id":     publicID,
			"upload_preset": c.uploadPreset,
		}).
		Post(c.endpoint("destroy"))
	if err != nil {
		return errors.UploadFailed("Failed to reach media service", err)
	}

	if resp.IsError() {
		logger.Warn("Media delete for %s returned %s", publicID, resp.Status())
		return errors.UploadFailed("Image delete failed", nil)
	}

	return nil
}

func (c *Client) endpoint(action string) string {
	return fmt.Sprintf("%s/v1_1/%s/image/%s", c.baseURL, c.cloudName, action)
}
