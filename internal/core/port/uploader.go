package port

import (
	"context"
	"io"
)

// ImageUploader pins an already validated image and returns its content
// identifier.
type ImageUploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
