package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateAyahQR generates a QR code image encoding a shareable ayah link
	GenerateAyahQR(surah, ayah int) ([]byte, error)

	// AyahShareLink builds the canonical share URL for an ayah
	AyahShareLink(surah, ayah int) string
}
