package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRCodeService_GenerateCheckoutQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateCheckoutQR("https://pay.example.com/epayment?pidx=abc123")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic number
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 0x50, 0x4E, 0x47}))
}

func TestQRCodeService_EmptyURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateCheckoutQR("")
	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestNewQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "unknown"} {
		svc := NewQRCodeService(128, level)
		png, err := svc.GenerateCheckoutQR("https://example.com")
		assert.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, png, "level %s", level)
	}
}
