package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mihrab/config"
)

// PNG magic bytes.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47}

func TestAyahShareLink(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://example.com/quran/"}}
	svc := NewQRCodeService(cfg)

	assert.Equal(t, "https://example.com/quran/2/255", svc.AyahShareLink(2, 255))
}

func TestAyahShareLinkDefaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	assert.Equal(t, "https://quran.com/1/1", svc.AyahShareLink(1, 1))
}

func TestGenerateAyahQR(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}
	svc := NewQRCodeService(cfg)

	png, err := svc.GenerateAyahQR(36, 9)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}
