package usecases_test

import (
	"context"
	"testing"

	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUplineWalker_RootUserHasNoUpline(t *testing.T) {
	users := new(MockUserRepository)
	buyer := uuid.New()
	users.On("GetSponsorID", context.Background(), buyer).Return(nil, nil).Once()

	walker := usecases.NewUplineWalker(users)
	upline, err := walker.Walk(context.Background(), buyer, 3)

	require.NoError(t, err)
	assert.Empty(t, upline)
}

func TestUplineWalker_ThreeDeepChain(t *testing.T) {
	users := new(MockUserRepository)
	buyer := uuid.New()
	a1, a2, a3 := uuid.New(), uuid.New(), uuid.New()

	users.On("GetSponsorID", context.Background(), buyer).Return(&a1, nil).Once()
	users.On("GetSponsorID", context.Background(), a1).Return(&a2, nil).Once()
	users.On("GetSponsorID", context.Background(), a2).Return(&a3, nil).Once()
	users.On("GetSponsorID", context.Background(), a3).Return(nil, nil).Once()

	walker := usecases.NewUplineWalker(users)
	upline, err := walker.Walk(context.Background(), buyer, 10)

	require.NoError(t, err)
	require.Len(t, upline, 3)
	assert.Equal(t, a1, upline[0].UserID)
	assert.Equal(t, 1, upline[0].Level)
	assert.Equal(t, a2, upline[1].UserID)
	assert.Equal(t, 2, upline[1].Level)
	assert.Equal(t, a3, upline[2].UserID)
	assert.Equal(t, 3, upline[2].Level)
}

func TestUplineWalker_StopsAtMaxDepth(t *testing.T) {
	users := new(MockUserRepository)
	buyer := uuid.New()
	a1, a2 := uuid.New(), uuid.New()

	users.On("GetSponsorID", context.Background(), buyer).Return(&a1, nil).Once()
	users.On("GetSponsorID", context.Background(), a1).Return(&a2, nil).Once()

	walker := usecases.NewUplineWalker(users)
	upline, err := walker.Walk(context.Background(), buyer, 2)

	require.NoError(t, err)
	assert.Len(t, upline, 2)
	users.AssertNumberOfCalls(t, "GetSponsorID", 2)
}

func TestUplineWalker_DetectsCycle(t *testing.T) {
	users := new(MockUserRepository)
	buyer := uuid.New()
	a1 := uuid.New()

	users.On("GetSponsorID", context.Background(), buyer).Return(&a1, nil).Once()
	users.On("GetSponsorID", context.Background(), a1).Return(&buyer, nil).Once()

	walker := usecases.NewUplineWalker(users)
	_, err := walker.Walk(context.Background(), buyer, 10)

	assert.ErrorIs(t, err, domainerrors.ErrCyclicReferral)
}

func TestUplineWalker_ZeroDepthIsEmpty(t *testing.T) {
	walker := usecases.NewUplineWalker(new(MockUserRepository))
	upline, err := walker.Walk(context.Background(), uuid.New(), 0)

	require.NoError(t, err)
	assert.Empty(t, upline)
}
