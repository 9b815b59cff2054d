package images

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"turnaicash-admin/internal/common/errors"
)

// MaxUploadSize is the ceiling for inline image payloads (decoded bytes).
const MaxUploadSize = 5 * 1024 * 1024

// ValidateField checks an image field before it is attached to an upstream
// payload. Plain URLs pass through untouched; `data:` URLs are decoded and
// must sniff as an image no larger than MaxUploadSize. Rejection happens
// here, before any network call is made.
func ValidateField(field, value string) error {
	if value == "" {
		return errors.NewValidationError(field, "image is required")
	}
	if !strings.HasPrefix(value, "data:") {
		return nil
	}

	payload, err := decodeDataURL(value)
	if err != nil {
		return errors.New(errors.ErrCodeImageValidation, "Invalid image data").WithField(field, err.Error())
	}

	if len(payload) > MaxUploadSize {
		return errors.New(errors.ErrCodeImageValidation, "Image size should be less than 5MB").
			WithField(field, "image exceeds the 5MB limit")
	}

	mt := mimetype.Detect(payload)
	if !strings.HasPrefix(mt.String(), "image/") {
		return errors.New(errors.ErrCodeImageValidation, "Please select an image file").
			WithField(field, "file is not an image ("+mt.String()+")")
	}
	return nil
}

func decodeDataURL(value string) ([]byte, error) {
	comma := strings.IndexByte(value, ',')
	if comma < 0 {
		return nil, errors.New(errors.ErrCodeImageValidation, "malformed data URL")
	}
	meta, data := value[len("data:"):comma], value[comma+1:]

	if strings.HasSuffix(meta, ";base64") {
		payload, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeImageValidation, "invalid base64 payload")
		}
		return payload, nil
	}
	return []byte(data), nil
}
