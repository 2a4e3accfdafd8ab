// Package images validates user-uploaded pictures and converts them to the
// embedded data-URI form the stored records carry.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/ccoveille/go-safecast"
	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
)

// Upload size caps.
const (
	MaxEventImageBytes   = 5 * 1024 * 1024
	MaxProfileImageBytes = 2 * 1024 * 1024

	profileThumbSize = 256
)

var (
	eventImageTypes = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/gif":  true,
		"image/webp": true,
	}
	profileImageTypes = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
	}
)

// ValidationError describes a rejected upload. It is shown inline and never
// persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// EventAttachment validates raw upload bytes for an event image and returns
// the data URI to embed. PNG, JPEG, GIF and WebP up to 5 MB are accepted.
func EventAttachment(data []byte) (string, error) {
	return attachment(data, MaxEventImageBytes, eventImageTypes, "Image size must be less than %s")
}

// ProfileAttachment validates raw upload bytes for a profile picture,
// normalizes it to a square thumbnail and returns the data URI to embed.
// Only PNG and JPEG up to 2 MB are accepted.
func ProfileAttachment(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Reason: "No image data provided."}
	}
	if len(data) > MaxProfileImageBytes {
		return "", &ValidationError{Reason: fmt.Sprintf("Image size must be less than %s.", limitString(MaxProfileImageBytes))}
	}
	mime := http.DetectContentType(data)
	if !profileImageTypes[mime] {
		return "", &ValidationError{Reason: "Please select a PNG or JPG image."}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", &ValidationError{Reason: "Failed to read image file."}
	}
	thumb := imaging.Thumbnail(img, profileThumbSize, profileThumbSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return EncodeDataURI("image/png", buf.Bytes()), nil
}

func attachment(data []byte, maxBytes int, allowed map[string]bool, sizeMsg string) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Reason: "No image data provided."}
	}
	if len(data) > maxBytes {
		return "", &ValidationError{Reason: fmt.Sprintf(sizeMsg, limitString(maxBytes))}
	}
	mime := http.DetectContentType(data)
	if !allowed[mime] {
		return "", &ValidationError{Reason: "Please select an image file."}
	}
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil && mime != "image/webp" {
		// imaging has no webp decoder, so webp passes on MIME sniff alone.
		return "", &ValidationError{Reason: "Failed to read image file."}
	}
	return EncodeDataURI(mime, data), nil
}

// EncodeDataURI embeds data as a base64 data URI.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI splits a data URI back into its MIME type and raw bytes.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("unsupported data URI encoding")
	}
	mime := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	return mime, data, nil
}

func limitString(maxBytes int) string {
	limit, err := safecast.ToUint64(maxBytes)
	if err != nil {
		return "0 B"
	}
	return humanize.Bytes(limit)
}
