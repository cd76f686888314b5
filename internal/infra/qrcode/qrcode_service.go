// Package qrcode renders checkout URLs as PNG QR codes.
package qrcode

import (
	"fmt"

	"inkpress/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCheckoutQR encodes a checkout URL into a PNG QR code.
// Scanning it opens the gateway's hosted payment page on the customer's phone.
func (s *qrcodeService) GenerateCheckoutQR(checkoutURL string) ([]byte, error) {
	if checkoutURL == "" {
		return nil, fmt.Errorf("checkout URL must not be empty")
	}

	qrCode, err := qrcode.New(checkoutURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
