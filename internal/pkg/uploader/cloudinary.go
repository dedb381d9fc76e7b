package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CloudinaryUploader performs unsigned uploads against the Cloudinary
// upload API. Unsigned uploads only need the cloud name and an upload
// preset, no API secret is involved.
type CloudinaryUploader struct {
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
	endpoint     string
}

func NewCloudinaryUploader(cloudName, uploadPreset string) *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
	}
}

// APIError represents an upload API error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upload error [%d]: %s", e.StatusCode, e.Message)
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload sends image bytes as an unsigned multipart upload and returns
// the hosted HTTPS URL. A random public id keeps uploads from
// overwriting each other.
func (u *CloudinaryUploader) Upload(ctx context.Context, image io.Reader, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to copy image data: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.WriteField("public_id", uuid.NewString()); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(msg)}
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return uploaded.SecureURL, nil
}
