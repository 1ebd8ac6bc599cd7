package service

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

// RestaurantService assembles restaurant views from the local store and the
// external places service. A userID of 0 means the caller is unauthenticated.
type RestaurantService interface {
	GetRestaurantDetail(placeID string, userID uint) (*entity.RestaurantDetailResponse, error)
	AddFavorite(userID uint, req entity.AddFavoriteRequest) (string, error)
	RemoveFavorite(userID uint, placeID string) error
	ListFavorites(userID uint) (*entity.FavoritesResponse, error)
	SubmitReview(userID uint, placeID string, req entity.ReviewRequest) (*entity.Review, error)
	SearchNearby(params entity.MapQueryParams, userID uint) (*entity.MapResponse, error)
}
