package postgres

import (
	"testing"

	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteTwice(t *testing.T) {
	repo := setupTestDB(t)

	favorite := entity.Favorite{UserID: 1, PlaceID: "place-1", Name: "Luigi's"}

	added, err := repo.Add(favorite)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(favorite)
	require.NoError(t, err)
	assert.False(t, added, "re-adding must be a no-op, not a constraint error")

	var count int64
	require.NoError(t, repo.DB.Model(&entity.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoriteDifferentUsersSamePlace(t *testing.T) {
	repo := setupTestDB(t)

	added, err := repo.Add(entity.Favorite{UserID: 1, PlaceID: "place-1"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(entity.Favorite{UserID: 2, PlaceID: "place-1"})
	require.NoError(t, err)
	assert.True(t, added, "uniqueness is per (user, place) pair")
}

func TestRemoveFavorite(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Add(entity.Favorite{UserID: 1, PlaceID: "place-1"})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(1, "place-1"))

	exists, err := repo.Exists(1, "place-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.Remove(1, "never-added")
	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestListByUser(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Add(entity.Favorite{UserID: 1, PlaceID: "place-1"})
	require.NoError(t, err)
	_, err = repo.Add(entity.Favorite{UserID: 1, PlaceID: "place-2"})
	require.NoError(t, err)
	_, err = repo.Add(entity.Favorite{UserID: 2, PlaceID: "place-3"})
	require.NoError(t, err)

	favorites, err := repo.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
	for _, fav := range favorites {
		assert.Equal(t, uint(1), fav.UserID)
	}
}
