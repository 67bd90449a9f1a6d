package exerciserepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
)

func TestMemoryRepositoryCRUD(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, exercise.Exercise{ExerciseName: "Push Ups", Category: "Chest", Description: "x"})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	second, err := repo.Create(ctx, exercise.Exercise{ExerciseName: "Squats", Category: "Legs", Description: "y"})
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "Push Ups", listed[0].ExerciseName)

	first.Sets = 4
	updated, err := repo.Update(ctx, first.ID, first)
	require.NoError(t, err)
	require.Equal(t, 4, updated.Sets)

	ok, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, found, err := repo.Get(ctx, second.ID)
	require.NoError(t, err)
	require.False(t, found)

	ok, err = repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
