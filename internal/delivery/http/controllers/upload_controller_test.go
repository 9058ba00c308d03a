package controllers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/media"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, field, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="photo"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadController_UploadImage(t *testing.T) {
	ingestor := media.NewIngestor(media.Options{MaxSizeBytes: 1 << 20, MaxWidth: 64})
	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		wantStatus int
		wantCode   string
		wantPrefix string
	}{
		{
			name:       "small png kept",
			req:        func(t *testing.T) *http.Request { return multipartRequest(t, "file", "image/png", pngBytes(t, 32, 16)) },
			wantStatus: http.StatusOK,
			wantPrefix: "data:image/png;base64,",
		},
		{
			name:       "wide png downscaled",
			req:        func(t *testing.T) *http.Request { return multipartRequest(t, "file", "image/png", pngBytes(t, 200, 100)) },
			wantStatus: http.StatusOK,
			wantPrefix: "data:image/jpeg;base64,",
		},
		{
			name:       "not an image",
			req:        func(t *testing.T) *http.Request { return multipartRequest(t, "file", "application/pdf", []byte("%PDF-1.4")) },
			wantStatus: http.StatusUnsupportedMediaType,
			wantCode:   helpers.ErrCodeUnsupportedMedia,
		},
		{
			name:       "corrupt image",
			req:        func(t *testing.T) *http.Request { return multipartRequest(t, "file", "image/png", []byte("not a png")) },
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "wrong field",
			req:        func(t *testing.T) *http.Request { return multipartRequest(t, "photo", "image/png", pngBytes(t, 8, 8)) },
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "too large",
			req:        func(t *testing.T) *http.Request { return multipartRequest(t, "file", "image/png", bytes.Repeat([]byte{0}, 2<<20)) },
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   helpers.ErrCodePayloadTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewUploadController(testLogger(), ingestor, ingestor.Options().MaxSizeBytes)

			w := httptest.NewRecorder()
			ctrl.UploadImage(w, tt.req(t))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantCode != "" {
				env := decode(t, w, nil)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			var got UploadResponse
			decode(t, w, &got)
			assert.True(t, strings.HasPrefix(got.DataURL, tt.wantPrefix), got.DataURL[:32])
		})
	}
}
