package repository

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

type FavoriteRepository interface {
	// Add stores a favorite for (userID, placeID). Re-adding an existing
	// pair is a no-op and reports added=false.
	Add(favorite entity.Favorite) (bool, error)

	// Remove deletes the favorite for (userID, placeID). Removing a pair
	// that does not exist returns ErrFavoriteNotFound.
	Remove(userID uint, placeID string) error

	ListByUser(userID uint) ([]entity.Favorite, error)

	Exists(userID uint, placeID string) (bool, error)
}
