package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"

	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

// Uploader posts images to a Cloudinary-style unsigned upload endpoint:
// multipart body with a "file" part and a fixed "upload_preset" field,
// response carries the hosted URL as "secure_url".
type Uploader struct {
	endpoint string
	preset   string
	client   *http.Client
	logger   ports.LoggerPort
}

func NewUploader(endpoint, preset string, client *http.Client, logger ports.LoggerPort) *Uploader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Uploader{
		endpoint: endpoint,
		preset:   preset,
		client:   client,
		logger:   logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

func (u *Uploader) Upload(ctx context.Context, image *domain.LocalImage) (string, error) {
	data := image.Data
	if data == nil {
		// Image not read yet: the URI points at a local file.
		var err error
		data, err = os.ReadFile(image.URI)
		if err != nil {
			return "", fmt.Errorf("read image %q: %w", image.URI, err)
		}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, image.FileName()))
	header.Set("Content-Type", image.ContentType())
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("build upload payload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build upload payload: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("build upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		u.logger.Error("Image upload failed", map[string]interface{}{
			"error": err.Error(),
			"file":  image.FileName(),
		})
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		u.logger.Error("Image upload rejected", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(respBody),
			"file":   image.FileName(),
		})
		return "", fmt.Errorf("upload image: unexpected status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	u.logger.Info("Image uploaded", map[string]interface{}{
		"file": image.FileName(),
		"url":  parsed.SecureURL,
	})

	return parsed.SecureURL, nil
}
