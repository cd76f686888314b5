package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateCheckoutQR encodes a checkout URL into a PNG QR code
	GenerateCheckoutQR(checkoutURL string) ([]byte, error)
}
