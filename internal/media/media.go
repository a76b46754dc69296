// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package media uploads and deletes the images content records point at.
// Uploads are sniffed, size-limited and downscaled to the folder's bounding
// box before they reach object storage; the returned public id is the only
// handle records keep.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"apigs/internal/models"
)

const (
	// MaxBytes is the largest accepted upload (5 MB).
	MaxBytes = 5 << 20

	// maxImagePixels caps decoded size to keep image bombs out of memory.
	maxImagePixels = 40_000_000

	jpegQuality = 85

	deleteAttempts = 3
)

var (
	ErrNotConfigured   = errors.New("media: object storage is not configured")
	ErrUnsupportedType = errors.New("media: unsupported file type")
	ErrTooLarge        = errors.New("media: file too large")
	ErrInvalidFolder   = errors.New("media: unknown folder")
	ErrEmpty           = errors.New("media: empty file")
)

// Box is the bounding box an upload is scaled down to fit.
type Box struct {
	Width, Height int
}

// Folders lists the accepted upload folders and their bounding boxes.
var Folders = map[string]Box{
	"projects": {Width: 1200, Height: 675},
	"blog":     {Width: 1200, Height: 675},
	"general":  {Width: 1200, Height: 675},
	"team":     {Width: 600, Height: 600},
}

// DefaultFolder is used when an upload names no folder.
const DefaultFolder = "general"

// formats maps sniffed content types to their stored extension.
var formats = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// ObjectStore is the subset of the storage client the service needs.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Registry records uploaded objects.
type Registry interface {
	Create(ctx context.Context, m *models.MediaAsset) (*models.MediaAsset, error)
	List(ctx context.Context, folder string) ([]models.MediaAsset, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
}

// Upload is one file handed to the service.
type Upload struct {
	Data       []byte
	Folder     string
	UploadedBy *string
}

// Service uploads and deletes media objects.
type Service struct {
	objects  ObjectStore
	registry Registry
	// backoff is the first delete retry delay; it doubles per attempt.
	backoff time.Duration
}

// New creates a media service. A nil objects store leaves the service
// unconfigured: every call returns ErrNotConfigured.
func New(objects ObjectStore, registry Registry) *Service {
	return &Service{
		objects:  objects,
		registry: registry,
		backoff:  200 * time.Millisecond,
	}
}

// Enabled reports whether object storage is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.objects != nil
}

// Upload validates, normalizes and stores an image, then registers it.
func (s *Service) Upload(ctx context.Context, u Upload) (*models.MediaAsset, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	folder := u.Folder
	if folder == "" {
		folder = DefaultFolder
	}
	box, ok := Folders[folder]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
	}

	img, err := Prepare(u.Data, box)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s.%s", folder, uuid.New().String(), img.Format)
	if err := s.objects.Put(ctx, key, img.ContentType, img.Data); err != nil {
		return nil, fmt.Errorf("media upload: %w", err)
	}

	asset := &models.MediaAsset{
		PublicID:   key,
		URL:        s.objects.URL(key),
		Width:      img.Width,
		Height:     img.Height,
		Format:     img.Format,
		Bytes:      int64(len(img.Data)),
		Folder:     folder,
		UploadedBy: u.UploadedBy,
	}
	if s.registry == nil {
		asset.CreatedAt = time.Now().UTC()
		return asset, nil
	}

	saved, err := s.registry.Create(ctx, asset)
	if err != nil {
		// The object is unreachable without its registry row.
		if derr := s.objects.Delete(ctx, key); derr != nil {
			slog.Warn("media cleanup after failed registration", "key", key, "error", derr)
		}
		return nil, fmt.Errorf("media register: %w", err)
	}
	return saved, nil
}

// List returns registered assets, newest first. An empty folder lists all.
func (s *Service) List(ctx context.Context, folder string) ([]models.MediaAsset, error) {
	if s.registry == nil {
		return []models.MediaAsset{}, nil
	}
	return s.registry.List(ctx, folder)
}

// Delete removes an object and its registry entry. Transient storage
// failures are retried with exponential backoff.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}
	if publicID == "" {
		return nil
	}

	b := retry.WithMaxRetries(deleteAttempts-1, retry.NewExponential(s.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.objects.Delete(ctx, publicID); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("media delete %s: %w", publicID, err)
	}

	if s.registry != nil {
		if err := s.registry.DeleteByPublicID(ctx, publicID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteQuietly deletes each id and logs failures instead of returning
// them. Used for objects orphaned by an update or delete that has already
// been committed.
func (s *Service) DeleteQuietly(ctx context.Context, publicIDs ...string) {
	if !s.Enabled() {
		return
	}
	for _, id := range publicIDs {
		if err := s.Delete(ctx, id); err != nil {
			slog.Warn("orphaned media not deleted", "public_id", id, "error", err)
		}
	}
}

// Image is an upload after validation and resizing.
type Image struct {
	Data        []byte
	ContentType string
	Format      string
	Width       int
	Height      int
}

// Prepare sniffs data, rejects anything that is not a supported image and
// downscales it to fit box. Animated GIFs are stored untouched.
func Prepare(data []byte, box Box) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxBytes {
		return nil, ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	format, ok := formats[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	out := &Image{Data: data, ContentType: contentType, Format: format, Width: cfg.Width, Height: cfg.Height}
	w, h := Fit(cfg.Width, cfg.Height, box)
	if format == "gif" || (w == cfg.Width && h == cfg.Height) {
		return out, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	default:
		// No WebP encoder is available; resized WebP is stored as PNG.
		err = png.Encode(&buf, dst)
		out.ContentType, out.Format = "image/png", "png"
	}
	if err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}

	out.Data, out.Width, out.Height = buf.Bytes(), w, h
	return out, nil
}

// Fit returns the largest dimensions with the source aspect ratio that fit
// inside box. Images already inside the box are returned unchanged.
func Fit(width, height int, box Box) (int, int) {
	if width <= box.Width && height <= box.Height {
		return width, height
	}
	scale := min(float64(box.Width)/float64(width), float64(box.Height)/float64(height))
	w := max(1, int(float64(width)*scale+0.5))
	h := max(1, int(float64(height)*scale+0.5))
	return min(w, box.Width), min(h, box.Height)
}
