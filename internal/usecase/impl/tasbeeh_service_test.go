package impl

import (
	"context"
	"testing"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	mockRepo "mihrab/internal/mocks/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTasbeehService(t *testing.T) (*tasbeehService, *mockRepo.MockTasbeehRepository) {
	tasbeehRepo := mockRepo.NewMockTasbeehRepository(t)
	service := NewTasbeehService(tasbeehRepo).(*tasbeehService)
	service.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	return service, tasbeehRepo
}

func TestTasbeehService_CreateCounter_Success(t *testing.T) {
	service, tasbeehRepo := createTestTasbeehService(t)

	ctx := context.Background()
	userID := uuid.New()

	tasbeehRepo.EXPECT().
		CreateCounter(ctx, mock.AnythingOfType("*entity.TasbeehCounter")).
		Return(nil)

	counter, err := service.CreateCounter(ctx, usecase.CreateCounterInput{
		UserID: userID,
		Phrase: "SubhanAllah",
		Target: 33,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, counter.UserID)
	assert.Equal(t, "SubhanAllah", counter.Phrase)
	assert.Equal(t, 33, counter.Target)
	assert.Equal(t, 0, counter.Count)
	assert.NotEqual(t, uuid.Nil, counter.ID)
}

func TestTasbeehService_CreateCounter_RejectsBlankPhrase(t *testing.T) {
	service, _ := createTestTasbeehService(t)

	counter, err := service.CreateCounter(context.Background(), usecase.CreateCounterInput{
		UserID: uuid.New(),
		Phrase: "   ",
	})

	require.Error(t, err)
	assert.Nil(t, counter)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTasbeehService_CreateCounter_RejectsNegativeTarget(t *testing.T) {
	service, _ := createTestTasbeehService(t)

	counter, err := service.CreateCounter(context.Background(), usecase.CreateCounterInput{
		UserID: uuid.New(),
		Phrase: "Alhamdulillah",
		Target: -1,
	})

	require.Error(t, err)
	assert.Nil(t, counter)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTasbeehService_Increment_DefaultsToOne(t *testing.T) {
	service, tasbeehRepo := createTestTasbeehService(t)

	ctx := context.Background()
	userID := uuid.New()
	counterID := uuid.New()

	tasbeehRepo.EXPECT().FindCounterByID(ctx, counterID).Return(&entity.TasbeehCounter{
		ID:     counterID,
		UserID: userID,
		Phrase: "SubhanAllah",
		Count:  10,
		Target: 33,
	}, nil)
	tasbeehRepo.EXPECT().UpdateCounter(ctx, mock.AnythingOfType("*entity.TasbeehCounter")).Return(nil)

	output, err := service.Increment(ctx, userID, counterID, 0)

	require.NoError(t, err)
	assert.Equal(t, 11, output.Counter.Count)
	assert.False(t, output.TargetReached)
}

func TestTasbeehService_Increment_ReportsTargetReached(t *testing.T) {
	service, tasbeehRepo := createTestTasbeehService(t)

	ctx := context.Background()
	userID := uuid.New()
	counterID := uuid.New()

	tasbeehRepo.EXPECT().FindCounterByID(ctx, counterID).Return(&entity.TasbeehCounter{
		ID:     counterID,
		UserID: userID,
		Phrase: "SubhanAllah",
		Count:  32,
		Target: 33,
	}, nil)
	tasbeehRepo.EXPECT().UpdateCounter(ctx, mock.AnythingOfType("*entity.TasbeehCounter")).Return(nil)

	output, err := service.Increment(ctx, userID, counterID, 1)

	require.NoError(t, err)
	assert.Equal(t, 33, output.Counter.Count)
	assert.True(t, output.TargetReached)
}

func TestTasbeehService_Increment_OtherUsersCounterReadsAsNotFound(t *testing.T) {
	service, tasbeehRepo := createTestTasbeehService(t)

	ctx := context.Background()
	counterID := uuid.New()

	tasbeehRepo.EXPECT().FindCounterByID(ctx, counterID).Return(&entity.TasbeehCounter{
		ID:     counterID,
		UserID: uuid.New(),
	}, nil)

	output, err := service.Increment(ctx, uuid.New(), counterID, 1)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCounterNotFound)
}

func TestTasbeehService_Reset_ZeroesCountOnly(t *testing.T) {
	service, tasbeehRepo := createTestTasbeehService(t)

	ctx := context.Background()
	userID := uuid.New()
	counterID := uuid.New()

	tasbeehRepo.EXPECT().FindCounterByID(ctx, counterID).Return(&entity.TasbeehCounter{
		ID:     counterID,
		UserID: userID,
		Phrase: "Allahu Akbar",
		Count:  34,
		Target: 34,
	}, nil)
	tasbeehRepo.EXPECT().UpdateCounter(ctx, mock.AnythingOfType("*entity.TasbeehCounter")).Return(nil)

	counter, err := service.Reset(ctx, userID, counterID)

	require.NoError(t, err)
	assert.Equal(t, 0, counter.Count)
	assert.Equal(t, "Allahu Akbar", counter.Phrase)
	assert.Equal(t, 34, counter.Target)
}

func TestTasbeehService_DeleteCounter_UnknownID(t *testing.T) {
	service, tasbeehRepo := createTestTasbeehService(t)

	ctx := context.Background()
	counterID := uuid.New()

	tasbeehRepo.EXPECT().
		FindCounterByID(ctx, counterID).
		Return(nil, repository.ErrCounterNotFound)

	err := service.DeleteCounter(ctx, uuid.New(), counterID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCounterNotFound)
}
