package impl

import (
	"context"
	"testing"

	domainerrors "mihrab/internal/domain/errors"
	mockSvc "mihrab/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService_AyahQR_Success(t *testing.T) {
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewShareService(qrService)

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	qrService.EXPECT().GenerateAyahQR(2, 255).Return(png, nil)
	qrService.EXPECT().AyahShareLink(2, 255).Return("https://quran.com/2/255")

	output, err := service.AyahQR(context.Background(), 2, 255)

	require.NoError(t, err)
	assert.Equal(t, "https://quran.com/2/255", output.Link)
	assert.Equal(t, png, output.PNG)
}

func TestShareService_AyahQR_RejectsBadSurah(t *testing.T) {
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewShareService(qrService)

	output, err := service.AyahQR(context.Background(), 115, 1)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSurahNotFound)
}

func TestShareService_AyahQR_RejectsBadAyah(t *testing.T) {
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewShareService(qrService)

	output, err := service.AyahQR(context.Background(), 2, 0)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAyahNotFound)
}
