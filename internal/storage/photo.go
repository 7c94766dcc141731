package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxPhotoWidth = 1280
	webpQuality   = 85
)

type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// PhotoUploader normalizes vehicle photos: decode (jpeg/png), downscale to a
// bounded width, re-encode as webp and push to the object store.
type PhotoUploader struct {
	store ObjectStore
}

func NewPhotoUploader(store ObjectStore) *PhotoUploader {
	return &PhotoUploader{store: store}
}

func (u *PhotoUploader) UploadVehiclePhoto(ctx context.Context, vehicleID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img := downscale(src, maxPhotoWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("vehicles/%d/%s.webp", vehicleID, uuid.New().String())
	return u.store.Put(ctx, key, "image/webp", buf.Bytes())
}

func downscale(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
