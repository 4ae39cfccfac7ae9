// Package imagehost talks to an sm.ms-style image hosting service:
// multipart POST of the image under the "smfile" field, API token in the
// Authorization header.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client uploads local files to the image host. The embedded http.Client
// carries a hard timeout so a hanging host can never stall a request forever.
type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
}

func New(endpoint, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// uploadResponse covers both the success and the duplicate-image shapes.
type uploadResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Images string `json:"images"` // set on code=image_repeated
}

// Upload posts the file and returns its hosted URL. A duplicate-image
// response reuses the already-hosted URL and counts as success.
func (c *Client) Upload(ctx context.Context, filePath string) (string, error) {
	body, contentType, err := buildMultipart(filePath)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %q: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}

	switch {
	case out.Success && out.Data.URL != "":
		return out.Data.URL, nil
	case out.Code == "image_repeated" && out.Images != "":
		return out.Images, nil
	default:
		return "", fmt.Errorf("image host rejected upload: %s", out.Message)
	}
}

func buildMultipart(filePath string) (*bytes.Buffer, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("open %q: %w", filePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("smfile", filepath.Base(filePath))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read %q: %w", filePath, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
