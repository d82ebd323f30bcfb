package usecase

import "context"

// ShareOutput carries a shareable ayah link and its QR code image.
type ShareOutput struct {
	Link string // Canonical web link to the ayah.
	PNG  []byte // QR code image encoding the link.
}

// ShareUsecase defines the interface for content sharing.
type ShareUsecase interface {
	// AyahQR validates the reference and renders a share QR code for it.
	AyahQR(ctx context.Context, surah, ayah int) (*ShareOutput, error)
}
