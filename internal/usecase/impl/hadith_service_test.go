package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	mockSvc "mihrab/internal/mocks/service"
	"mihrab/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestHadithService(t *testing.T) (usecase.HadithUsecase, *mockSvc.MockHadithClient, *mockSvc.MockCache) {
	client := mockSvc.NewMockHadithClient(t)
	cache := mockSvc.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewHadithService(HadithServiceParams{
		Client: client,
		Cache:  cache,
		Config: &config.Config{},
		Logger: logger,
	})

	return service, client, cache
}

func manyHadiths(n int) []entity.Hadith {
	hadiths := make([]entity.Hadith, 0, n)
	for i := 1; i <= n; i++ {
		hadiths = append(hadiths, entity.Hadith{Number: i, Text: "narration"})
	}

	return hadiths
}

func TestHadithService_ListBooks_CachesResult(t *testing.T) {
	service, client, cache := createTestHadithService(t)

	ctx := context.Background()
	books := []entity.HadithBook{
		{Key: "bukhari", Name: "Sahih al-Bukhari", HadithCount: 7563},
	}

	cache.EXPECT().Get(ctx, "hadith:books").Return(nil, false)
	client.EXPECT().ListBooks(ctx).Return(books, nil)
	cache.EXPECT().Set(ctx, "hadith:books", mock.Anything, defaultHadithCacheTTL).Return()

	got, err := service.ListBooks(ctx)

	require.NoError(t, err)
	assert.Equal(t, books, got)
}

func TestHadithService_ListBooks_CacheHit(t *testing.T) {
	service, _, cache := createTestHadithService(t)

	ctx := context.Background()
	cached, err := json.Marshal([]entity.HadithBook{{Key: "muslim", Name: "Sahih Muslim"}})
	require.NoError(t, err)

	cache.EXPECT().Get(ctx, "hadith:books").Return(cached, true)

	got, err := service.ListBooks(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "muslim", got[0].Key)
}

func TestHadithService_GetBookPage_PagesLocally(t *testing.T) {
	service, client, cache := createTestHadithService(t)

	ctx := context.Background()

	cache.EXPECT().Get(ctx, "hadith:book:bukhari").Return(nil, false)
	client.EXPECT().GetBook(ctx, "bukhari").Return(manyHadiths(45), nil)
	cache.EXPECT().Set(ctx, "hadith:book:bukhari", mock.Anything, defaultHadithCacheTTL).Return()

	page, err := service.GetBookPage(ctx, "bukhari", 2, 20)

	require.NoError(t, err)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Hadiths, 20)
	assert.Equal(t, 21, page.Hadiths[0].Number)
	assert.Equal(t, 40, page.Hadiths[19].Number)
}

func TestHadithService_GetBookPage_LastPartialPage(t *testing.T) {
	service, client, cache := createTestHadithService(t)

	ctx := context.Background()

	cache.EXPECT().Get(ctx, "hadith:book:bukhari").Return(nil, false)
	client.EXPECT().GetBook(ctx, "bukhari").Return(manyHadiths(45), nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	page, err := service.GetBookPage(ctx, "bukhari", 3, 20)

	require.NoError(t, err)
	require.Len(t, page.Hadiths, 5)
	assert.Equal(t, 41, page.Hadiths[0].Number)
}

func TestHadithService_GetBookPage_BeyondEndIsEmpty(t *testing.T) {
	service, client, cache := createTestHadithService(t)

	ctx := context.Background()

	cache.EXPECT().Get(ctx, "hadith:book:bukhari").Return(nil, false)
	client.EXPECT().GetBook(ctx, "bukhari").Return(manyHadiths(10), nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	page, err := service.GetBookPage(ctx, "bukhari", 5, 20)

	require.NoError(t, err)
	assert.Empty(t, page.Hadiths)
	assert.Equal(t, 10, page.Total)
}

func TestHadithService_GetBookPage_ClampsPageInputs(t *testing.T) {
	service, client, cache := createTestHadithService(t)

	ctx := context.Background()

	cache.EXPECT().Get(ctx, "hadith:book:bukhari").Return(nil, false)
	client.EXPECT().GetBook(ctx, "bukhari").Return(manyHadiths(5), nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	page, err := service.GetBookPage(ctx, "bukhari", 0, -1)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultHadithPageSize, page.PageSize)
	assert.Len(t, page.Hadiths, 5)
}

func TestHadithService_GetBookPage_UnknownBook(t *testing.T) {
	service, client, cache := createTestHadithService(t)

	ctx := context.Background()

	cache.EXPECT().Get(ctx, "hadith:book:unknown").Return(nil, false)
	client.EXPECT().GetBook(ctx, "unknown").Return(nil, errors.New("not found: 404"))

	page, err := service.GetBookPage(ctx, "unknown", 1, 20)

	require.Error(t, err)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrHadithBookNotFound)
}

func TestHadithService_GetHadith_RejectsNonPositiveNumber(t *testing.T) {
	service, _, _ := createTestHadithService(t)

	hadith, err := service.GetHadith(context.Background(), "bukhari", 0)

	require.Error(t, err)
	assert.Nil(t, hadith)
	assert.ErrorIs(t, err, domainerrors.ErrHadithNotFound)
}

func TestHadithService_GetHadith_Success(t *testing.T) {
	service, client, _ := createTestHadithService(t)

	ctx := context.Background()
	want := &entity.Hadith{Number: 1, Text: "Actions are judged by intentions."}

	client.EXPECT().GetHadith(ctx, "bukhari", 1).Return(want, nil)

	got, err := service.GetHadith(ctx, "bukhari", 1)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
