package httpadapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/format"
)

const (
	uploadField = "file"
	sniffLen    = 512
)

// handleUpload accepts a multipart image, checks its detected type and
// size, and pins it. The declared content type of the part is ignored.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		h.writeJSON(w, http.StatusNotImplemented, errorBody{Error: "Uploads are disabled"})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxImageSize+maxBodySize)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: file too large, max 5MB", domain.ErrInvalidImage))
			return
		}
		h.writeError(w, r, &domain.ValidationError{Field: uploadField, Message: "File is required"})
		return
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.writeError(w, r, err)
		return
	}
	head = head[:n]
	contentType := http.DetectContentType(head)
	if err := domain.ValidateImage(contentType, header.Size); err != nil {
		h.writeError(w, r, err)
		return
	}

	cid, err := h.uploader.Upload(r.Context(), header.Filename, contentType, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, uploadJSON{CID: cid, URL: format.ImageURL(h.opts.Gateway, cid)})
}
