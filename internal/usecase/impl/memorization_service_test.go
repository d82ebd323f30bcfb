package impl

import (
	"context"
	"testing"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	mockRepo "mihrab/internal/mocks/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMemorizationService(t *testing.T) (*memorizationService, *mockRepo.MockMemorizationRepository) {
	memorizationRepo := mockRepo.NewMockMemorizationRepository(t)
	service := NewMemorizationService(memorizationRepo).(*memorizationService)
	service.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	return service, memorizationRepo
}

func TestMemorizationService_CreateEntry_DefaultsToLearning(t *testing.T) {
	service, memorizationRepo := createTestMemorizationService(t)

	ctx := context.Background()
	userID := uuid.New()

	memorizationRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.MemorizationEntry")).
		Return(nil)

	entry, err := service.CreateEntry(ctx, usecase.CreateMemorizationInput{
		UserID:   userID,
		Surah:    67,
		AyahFrom: 1,
		AyahTo:   30,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusLearning, entry.Status)
	assert.Equal(t, 67, entry.Surah)
	assert.True(t, entry.LastReviewedAt.IsZero())
}

func TestMemorizationService_CreateEntry_RejectsBadSurah(t *testing.T) {
	service, _ := createTestMemorizationService(t)

	entry, err := service.CreateEntry(context.Background(), usecase.CreateMemorizationInput{
		UserID:   uuid.New(),
		Surah:    115,
		AyahFrom: 1,
		AyahTo:   5,
	})

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMemorizationService_CreateEntry_RejectsInvertedRange(t *testing.T) {
	service, _ := createTestMemorizationService(t)

	entry, err := service.CreateEntry(context.Background(), usecase.CreateMemorizationInput{
		UserID:   uuid.New(),
		Surah:    2,
		AyahFrom: 10,
		AyahTo:   5,
	})

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMemorizationService_CreateEntry_RejectsUnknownStatus(t *testing.T) {
	service, _ := createTestMemorizationService(t)

	entry, err := service.CreateEntry(context.Background(), usecase.CreateMemorizationInput{
		UserID:   uuid.New(),
		Surah:    2,
		AyahFrom: 1,
		AyahTo:   5,
		Status:   "perfected",
	})

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMemorizationStatus)
}

func TestMemorizationService_UpdateStatus_StampsReviewTime(t *testing.T) {
	service, memorizationRepo := createTestMemorizationService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	memorizationRepo.EXPECT().FindEntryByID(ctx, entryID).Return(&entity.MemorizationEntry{
		ID:     entryID,
		UserID: userID,
		Surah:  67,
		Status: entity.StatusLearning,
	}, nil)
	memorizationRepo.EXPECT().UpdateEntry(ctx, mock.AnythingOfType("*entity.MemorizationEntry")).Return(nil)

	entry, err := service.UpdateStatus(ctx, usecase.UpdateMemorizationInput{
		UserID:  userID,
		EntryID: entryID,
		Status:  entity.StatusMastered,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusMastered, entry.Status)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), entry.LastReviewedAt)
}

func TestMemorizationService_UpdateStatus_OtherUsersEntryReadsAsNotFound(t *testing.T) {
	service, memorizationRepo := createTestMemorizationService(t)

	ctx := context.Background()
	entryID := uuid.New()

	memorizationRepo.EXPECT().FindEntryByID(ctx, entryID).Return(&entity.MemorizationEntry{
		ID:     entryID,
		UserID: uuid.New(),
	}, nil)

	entry, err := service.UpdateStatus(ctx, usecase.UpdateMemorizationInput{
		UserID:  uuid.New(),
		EntryID: entryID,
		Status:  entity.StatusReviewing,
	})

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrMemorizationNotFound)
}

func TestMemorizationService_Summary_Passthrough(t *testing.T) {
	service, memorizationRepo := createTestMemorizationService(t)

	ctx := context.Background()
	userID := uuid.New()

	memorizationRepo.EXPECT().SummarizeByUser(ctx, userID).Return(&entity.MemorizationSummary{
		Learning:  2,
		Reviewing: 1,
		Mastered:  4,
		Total:     7,
	}, nil)

	summary, err := service.Summary(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 4, summary.Mastered)
}
