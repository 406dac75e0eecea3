// Package pinata pins campaign images to IPFS through the Pinata API.
package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"sedulur-fund/internal/core/domain"
)

// Uploader implements port.ImageUploader.
type Uploader struct {
	endpoint string
	jwt      string
	client   *http.Client
}

func NewUploader(endpoint, jwt string, client *http.Client) *Uploader {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Uploader{endpoint: endpoint, jwt: jwt, client: client}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
}

// Upload sends r as the "file" part and returns the pinned CID. Every
// failure wraps domain.ErrUploadFailed.
func (u *Uploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if _, err = io.Copy(part, r); err != nil {
		return "", fmt.Errorf("%w: read file: %v", domain.ErrUploadFailed, err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+u.jwt)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&er)
		return "", fmt.Errorf("%w: pinata status %d %s", domain.ErrUploadFailed, resp.StatusCode, er.Message)
	}

	var pr pinResponse
	if err = json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrUploadFailed, err)
	}
	if pr.IpfsHash == "" {
		return "", fmt.Errorf("%w: empty cid", domain.ErrUploadFailed)
	}
	return pr.IpfsHash, nil
}
