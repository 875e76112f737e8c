package ipc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrBadDataURL rejects payloads that are not base64 image data URLs.
var ErrBadDataURL = errors.New("ipc: malformed image data url")

const (
	dataURLPrefix = "data:image/"
	base64Marker  = ";base64,"
)

// DecodeImageDataURL strips the data:image/<type>;base64, prefix and
// decodes the remainder. Returns the raw bytes and the encoded type.
func DecodeImageDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return nil, "", ErrBadDataURL
	}
	rest := dataURL[len(dataURLPrefix):]
	idx := strings.Index(rest, base64Marker)
	if idx < 0 {
		return nil, "", ErrBadDataURL
	}
	imgType := rest[:idx]
	payload := rest[idx+len(base64Marker):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrBadDataURL, err)
	}
	return data, normalizeFormat(imgType), nil
}

// normalizeFormat folds the jpg/jpeg alias so format comparisons work.
func normalizeFormat(format string) string {
	format = strings.ToLower(format)
	if format == "jpg" {
		return "jpeg"
	}
	return format
}

// TranscodeImage re-encodes image bytes into the target format. Used when
// the export format differs from what the canvas encoded.
func TranscodeImage(data []byte, targetFormat string) ([]byte, error) {
	var format imaging.Format
	switch normalizeFormat(targetFormat) {
	case "png":
		format = imaging.PNG
	case "jpeg":
		format = imaging.JPEG
	default:
		return nil, fmt.Errorf("ipc: unsupported export format %q", targetFormat)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(92)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
