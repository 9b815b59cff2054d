package images

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnaicash-admin/internal/common/errors"
)

// Smallest complete 1x1 transparent PNG.
var pngPayload = mustBase64("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func mustBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func dataURL(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantCode errors.ErrorCode
	}{
		{
			name:     "empty value is rejected",
			value:    "",
			wantCode: errors.ErrCodeValidation,
		},
		{
			name:  "plain url passes untouched",
			value: "https://cdn.example.com/banners/wave.png",
		},
		{
			name:  "valid inline png passes",
			value: dataURL(pngPayload),
		},
		{
			name:     "non-image payload is rejected",
			value:    dataURL([]byte("hello, definitely not pixels")),
			wantCode: errors.ErrCodeImageValidation,
		},
		{
			name:     "oversize payload is rejected",
			value:    dataURL(bytes.Repeat([]byte{0xAB}, MaxUploadSize+1)),
			wantCode: errors.ErrCodeImageValidation,
		},
		{
			name:     "malformed base64 is rejected",
			value:    "data:image/png;base64,!!!not-base64!!!",
			wantCode: errors.ErrCodeImageValidation,
		},
		{
			name:     "data url without comma is rejected",
			value:    "data:image/png;base64",
			wantCode: errors.ErrCodeImageValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField("image", tt.value)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := errors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestOversizeCheckRunsBeforeMimeSniff(t *testing.T) {
	// A giant payload that would also fail the image sniff must be reported
	// as an oversize problem, matching the limit the dialog enforces.
	err := ValidateField("image", dataURL(bytes.Repeat([]byte("x"), MaxUploadSize+1)))
	require.Error(t, err)
	appErr, _ := errors.AsAppError(err)
	assert.Contains(t, appErr.Message, "5MB")
}
