package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/client/alquran"
	mockRepo "mihrab/internal/mocks/repository"
	mockSvc "mihrab/internal/mocks/service"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type quranServiceFixtures struct {
	service      usecase.QuranUsecase
	client       *mockSvc.MockQuranClient
	cache        *mockSvc.MockCache
	bookmarkRepo *mockRepo.MockBookmarkRepository
	qrService    *mockSvc.MockQRCodeService
}

func createTestQuranService(t *testing.T) quranServiceFixtures {
	client := mockSvc.NewMockQuranClient(t)
	cache := mockSvc.NewMockCache(t)
	bookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewQuranService(QuranServiceParams{
		Client:       client,
		Cache:        cache,
		BookmarkRepo: bookmarkRepo,
		QRService:    qrService,
		Config:       &config.Config{},
		Logger:       logger,
	})

	return quranServiceFixtures{
		service:      service,
		client:       client,
		cache:        cache,
		bookmarkRepo: bookmarkRepo,
		qrService:    qrService,
	}
}

func surahText(edition string, texts ...string) *entity.SurahText {
	st := &entity.SurahText{
		Surah:   entity.Surah{Number: 1, Name: "الفاتحة", EnglishName: "Al-Faatiha", NumberOfAyahs: len(texts)},
		Edition: edition,
	}
	for i, text := range texts {
		st.Ayahs = append(st.Ayahs, entity.Ayah{NumberInSurah: i + 1, Text: text})
	}

	return st
}

func TestQuranService_GetSurah_PairsVersesByPosition(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "quran:surah:1:en.asad").Return(nil, false)
	fx.client.EXPECT().
		GetSurah(ctx, 1, alquran.ArabicEdition).
		Return(surahText(alquran.ArabicEdition, "بِسْمِ اللَّهِ", "الْحَمْدُ لِلَّهِ"), nil)
	fx.client.EXPECT().
		GetSurah(ctx, 1, "en.asad").
		Return(surahText("en.asad", "In the name of God", "All praise is due to God"), nil)
	fx.cache.EXPECT().Set(ctx, "quran:surah:1:en.asad", mock.Anything, mock.Anything).Return()

	result, err := fx.service.GetSurah(ctx, 1, "")

	require.NoError(t, err)
	assert.Equal(t, "en.asad", result.TranslationEdition)
	require.Len(t, result.Verses, 2)
	assert.Equal(t, "بِسْمِ اللَّهِ", result.Verses[0].Arabic)
	assert.Equal(t, "In the name of God", result.Verses[0].Translation)
	assert.Equal(t, 2, result.Verses[1].NumberInSurah)
}

func TestQuranService_GetSurah_ShortTranslationLeavesTailUntranslated(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false)
	fx.client.EXPECT().
		GetSurah(ctx, 1, alquran.ArabicEdition).
		Return(surahText(alquran.ArabicEdition, "آية ١", "آية ٢", "آية ٣"), nil)
	fx.client.EXPECT().
		GetSurah(ctx, 1, "en.sahih").
		Return(surahText("en.sahih", "Verse one"), nil)
	fx.cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := fx.service.GetSurah(ctx, 1, "en.sahih")

	require.NoError(t, err)
	require.Len(t, result.Verses, 3, "Arabic verse count is authoritative")
	assert.Equal(t, "Verse one", result.Verses[0].Translation)
	assert.Empty(t, result.Verses[1].Translation)
	assert.Empty(t, result.Verses[2].Translation)
}

func TestQuranService_GetSurah_RejectsOutOfRange(t *testing.T) {
	fx := createTestQuranService(t)

	for _, number := range []int{0, 115} {
		result, err := fx.service.GetSurah(context.Background(), number, "")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrSurahNotFound)
	}
}

func TestQuranService_GetAyah_BuildsSharePair(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.client.EXPECT().
		GetAyah(ctx, 2, 255, alquran.ArabicEdition).
		Return(&entity.Ayah{NumberInSurah: 255, Text: "اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ"}, nil)
	fx.client.EXPECT().
		GetAyah(ctx, 2, 255, "en.asad").
		Return(&entity.Ayah{NumberInSurah: 255, Text: "God - there is no deity save Him"}, nil)
	fx.qrService.EXPECT().AyahShareLink(2, 255).Return("https://quran.com/2/255")

	output, err := fx.service.GetAyah(ctx, 2, 255, "")

	require.NoError(t, err)
	assert.Equal(t, 2, output.Surah)
	assert.Equal(t, 255, output.Verse.NumberInSurah)
	assert.Equal(t, "https://quran.com/2/255", output.ShareLink)
}

func TestQuranService_GetAyah_UnknownVerse(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()

	fx.client.EXPECT().
		GetAyah(ctx, 1, 99, alquran.ArabicEdition).
		Return(nil, assert.AnError)

	output, err := fx.service.GetAyah(ctx, 1, 99, "")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAyahNotFound)
}

func TestQuranService_Search_UsesConfiguredEdition(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()
	matches := []entity.SearchMatch{{Surah: 21, NumberInSurah: 107}}

	fx.client.EXPECT().Search(ctx, "mercy", 0, "en.asad").Return(matches, nil)

	got, err := fx.service.Search(ctx, "mercy", 0)

	require.NoError(t, err)
	assert.Equal(t, matches, got)
}

func TestQuranService_AddBookmark_Validates(t *testing.T) {
	fx := createTestQuranService(t)

	bookmark, err := fx.service.AddBookmark(context.Background(), usecase.AddBookmarkInput{
		UserID: uuid.New(),
		Surah:  0,
		Ayah:   1,
	})

	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.ErrorIs(t, err, domainerrors.ErrSurahNotFound)
}

func TestQuranService_DeleteBookmark_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()

	fx.bookmarkRepo.EXPECT().FindBookmarkByID(ctx, bookmarkID).Return(&entity.Bookmark{
		ID:     bookmarkID,
		UserID: uuid.New(),
	}, nil)

	err := fx.service.DeleteBookmark(ctx, uuid.New(), bookmarkID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQuranService_DeleteBookmark_Success(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()

	fx.bookmarkRepo.EXPECT().FindBookmarkByID(ctx, bookmarkID).Return(&entity.Bookmark{
		ID:     bookmarkID,
		UserID: userID,
	}, nil)
	fx.bookmarkRepo.EXPECT().DeleteBookmark(ctx, bookmarkID).Return(nil)

	err := fx.service.DeleteBookmark(ctx, userID, bookmarkID)

	require.NoError(t, err)
}

func TestQuranService_GetProgress_NoneYet(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bookmarkRepo.EXPECT().
		FindProgressByUserID(ctx, userID).
		Return(nil, repository.ErrProgressNotFound)

	progress, err := fx.service.GetProgress(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, progress)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestQuranService_SaveProgress_Success(t *testing.T) {
	fx := createTestQuranService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bookmarkRepo.EXPECT().
		SaveProgress(ctx, mock.AnythingOfType("*entity.ReadingProgress")).
		Return(nil)

	progress, err := fx.service.SaveProgress(ctx, usecase.SaveProgressInput{
		UserID: userID,
		Surah:  18,
		Ayah:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, 18, progress.Surah)
	assert.Equal(t, 10, progress.Ayah)
}
