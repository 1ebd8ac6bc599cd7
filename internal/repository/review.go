package repository

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

type ReviewRepository interface {
	CreateReview(review *entity.Review) error

	// ListByRestaurant returns the restaurant's reviews newest first.
	ListByRestaurant(restaurantID uint) ([]entity.Review, error)
}
