package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/media"
)

// ImageIngestor converts an uploaded image into a data URL.
type ImageIngestor interface {
	ToDataURL(contentType string, size int64, r io.Reader) (string, error)
}

// multipartOverhead is the allowance for form boundaries and headers on top of the image itself.
const multipartOverhead = 64 << 10

// UploadResponse is the response body for POST /admin/uploads/image.
type UploadResponse struct {
	DataURL string `json:"dataUrl"`
}

type UploadController struct {
	Logger       *slog.Logger
	Ingestor     ImageIngestor
	MaxSizeBytes int64
}

func NewUploadController(logger *slog.Logger, ingestor ImageIngestor, maxSizeBytes int64) *UploadController {
	return &UploadController{Logger: logger, Ingestor: ingestor, MaxSizeBytes: maxSizeBytes}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Accepts a multipart "file" field. Images wider than the configured maximum are downscaled and re-encoded as JPEG. Returns a data URL to store on a speaker, committee member or application.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} helpers.APIResponse "data contains dataUrl"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 415 {object} helpers.APIResponse "error.code: unsupported_media_type"
// @Router /admin/uploads/image [post]
func (c *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	limit := c.MaxSizeBytes + multipartOverhead
	if r.ContentLength > limit {
		h.WriteJSONError(w, http.StatusRequestEntityTooLarge, h.ErrCodePayloadTooLarge, "image too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.WriteJSONError(w, http.StatusRequestEntityTooLarge, h.ErrCodePayloadTooLarge, "image too large")
			return
		}
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing file field")
		return
	}
	defer file.Close()

	url, err := c.Ingestor.ToDataURL(header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrTooLarge):
			h.WriteJSONError(w, http.StatusRequestEntityTooLarge, h.ErrCodePayloadTooLarge, err.Error())
		case errors.Is(err, media.ErrNotImage):
			h.WriteJSONError(w, http.StatusUnsupportedMediaType, h.ErrCodeUnsupportedMedia, err.Error())
		default:
			writeError(c.Logger, w, r, err)
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, UploadResponse{DataURL: url})
}
