// Package media turns uploaded images into data URLs, downscaling wide images.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register decoders
	"image/jpeg"
	_ "image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"agtechsummit/internal/domain"
)

// Upload rejections. Both wrap domain.ErrInvalidInput.
var (
	ErrNotImage    = fmt.Errorf("please upload a valid image file: %w", domain.ErrInvalidInput)
	ErrTooLarge    = fmt.Errorf("image too large: %w", domain.ErrInvalidInput)
	ErrUndecodable = fmt.Errorf("failed to load selected image: %w", domain.ErrInvalidInput)
)

// Options bounds uploads. Zero fields take the defaults.
type Options struct {
	MaxSizeBytes int64
	MaxWidth     int
	Quality      float64 // JPEG quality in (0, 1]
	MaxPixels    int     // width*height cap checked before decoding
}

// Default limits: 5MB, 1200px wide, quality 0.82.
const (
	DefaultMaxSizeBytes = 5 * 1024 * 1024
	DefaultMaxWidth     = 1200
	DefaultQuality      = 0.82
	DefaultMaxPixels    = 40_000_000
)

type Ingestor struct {
	opts Options
}

func NewIngestor(opts Options) *Ingestor {
	if opts.MaxSizeBytes <= 0 {
		opts.MaxSizeBytes = DefaultMaxSizeBytes
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = DefaultMaxPixels
	}
	if opts.Quality <= 0 || opts.Quality > 1 {
		opts.Quality = DefaultQuality
	}
	return &Ingestor{opts: opts}
}

// Options returns the effective limits.
func (in *Ingestor) Options() Options { return in.opts }

// ToDataURL validates an upload of the declared content type and size and returns it as a
// data URL. Images no wider than MaxWidth are returned unchanged; wider ones are scaled to
// MaxWidth, keeping the aspect ratio, and re-encoded as JPEG.
func (in *Ingestor) ToDataURL(contentType string, size int64, r io.Reader) (string, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	if size > in.opts.MaxSizeBytes {
		return "", fmt.Errorf("image must be %dMB or smaller: %w", in.opts.MaxSizeBytes/(1024*1024), ErrTooLarge)
	}
	data, err := io.ReadAll(io.LimitReader(r, in.opts.MaxSizeBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > in.opts.MaxSizeBytes {
		return "", ErrTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", errors.Join(ErrUndecodable, err)
	}
	// A small file can declare huge dimensions; decoding allocates width*height pixels.
	if int64(cfg.Width)*int64(cfg.Height) > int64(in.opts.MaxPixels) {
		return "", fmt.Errorf("image is %dx%d pixels: %w", cfg.Width, cfg.Height, ErrTooLarge)
	}
	if cfg.Width <= in.opts.MaxWidth {
		return dataURL(contentType, data), nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Join(ErrUndecodable, err)
	}
	scaled, err := in.downscale(src)
	if err != nil {
		return "", err
	}
	return dataURL("image/jpeg", scaled), nil
}

func (in *Ingestor) downscale(src image.Image) ([]byte, error) {
	b := src.Bounds()
	ratio := float64(in.opts.MaxWidth) / float64(b.Dx())
	h := max(1, int(math.Round(float64(b.Dy())*ratio)))
	dst := image.NewRGBA(image.Rect(0, 0, in.opts.MaxWidth, h))
	// JPEG has no alpha; transparent areas become white.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	q := int(math.Round(in.opts.Quality * 100))
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
