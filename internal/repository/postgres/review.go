package postgres

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

func (r *RepoDatabase) CreateReview(review *entity.Review) error {
	return r.DB.Create(review).Error
}

// ListByRestaurant returns reviews newest first. The id tiebreak keeps the
// order stable for reviews created within the same timestamp.
func (r *RepoDatabase) ListByRestaurant(restaurantID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
