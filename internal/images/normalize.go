// Package images normalizes uploaded images: decode, downscale into a
// bounding box and re-encode as a base64 data URL.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

var ErrUndecodable = errors.New("the uploaded file could not be decoded as an image")

// Format is the output encoding.
type Format string

const (
	// JPEG is the default, lossy output with a fixed quality.
	JPEG Format = "jpeg"
	// PNG is used for logos where transparency must survive.
	PNG Format = "png"
)

const jpegQuality = 80

// Preset bounding boxes for the two call sites: small thumbnails for
// avatars and logos, large scans for OCR input where text detail matters.
const (
	ThumbnailBound = 300
	ScanBound      = 2048
)

// Options bound the output resolution and select the encoding.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Format    Format
}

// Thumbnail returns the options for avatar and logo previews.
func Thumbnail(format Format) Options {
	return Options{MaxWidth: ThumbnailBound, MaxHeight: ThumbnailBound, Format: format}
}

// Scan returns the options for OCR source images.
func Scan() Options {
	return Options{MaxWidth: ScanBound, MaxHeight: ScanBound, Format: JPEG}
}

// Normalize decodes an image, scales it down to fit the bounding box if
// either dimension exceeds it (never upscaling, aspect ratio preserved) and
// returns it re-encoded as a base64 data URL.
func Normalize(r io.Reader, opts Options) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > opts.MaxWidth || bounds.Dy() > opts.MaxHeight {
		img = imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	var mime string

	switch opts.Format {
	case PNG:
		mime = "image/png"
		err = imaging.Encode(&buf, img, imaging.PNG)
	default:
		mime = "image/jpeg"
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
