package impl

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	qrService service.QRCodeService
}

// NewShareService creates a new share service instance.
func NewShareService(qrService service.QRCodeService) usecase.ShareUsecase {
	return &shareService{qrService: qrService}
}

func (srv *shareService) AyahQR(ctx context.Context, surah, ayah int) (*usecase.ShareOutput, error) {
	if surah < 1 || surah > surahCount {
		return nil, domainerrors.ErrSurahNotFound.WithDetails(fmt.Sprintf("surah %d is out of range", surah))
	}
	if ayah < 1 {
		return nil, domainerrors.ErrAyahNotFound.WithDetails(fmt.Sprintf("ayah %d is out of range", ayah))
	}

	png, err := srv.qrService.GenerateAyahQR(surah, ayah)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return &usecase.ShareOutput{
		Link: srv.qrService.AyahShareLink(surah, ayah),
		PNG:  png,
	}, nil
}
