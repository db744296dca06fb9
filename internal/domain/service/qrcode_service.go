package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateLinkQR renders a URL as a PNG QR code
	GenerateLinkQR(link string) ([]byte, error)
}
