package domain

import "fmt"

// MaxImageSize is the upload limit for campaign images.
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImage checks an upload's detected content type and size.
func ValidateImage(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("%w: unsupported type %q, use JPG, PNG, WebP or GIF", ErrInvalidImage, contentType)
	}
	if size <= 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if size > MaxImageSize {
		return fmt.Errorf("%w: file too large, max 5MB", ErrInvalidImage)
	}
	return nil
}
