package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"mihrab/config"
	"mihrab/internal/domain/service"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://quran.com"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	baseURL := defaultBaseURL

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}

		switch cfg.QRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// AyahShareLink builds the canonical share URL for an ayah
func (s *qrcodeService) AyahShareLink(surah, ayah int) string {
	return fmt.Sprintf("%s/%d/%d", s.baseURL, surah, ayah)
}

// GenerateAyahQR generates a QR code PNG encoding a shareable ayah link
func (s *qrcodeService) GenerateAyahQR(surah, ayah int) ([]byte, error) {
	qrCode, err := qrcode.New(s.AyahShareLink(surah, ayah), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
