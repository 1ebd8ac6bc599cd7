package restaurant

import (
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/util"
)

type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
	favoriteRepo   repository.FavoriteRepository
	reviewRepo     repository.ReviewRepository
	placesAPI      repository.PlacesAPIRepository
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: repo.RestaurantRepo,
		favoriteRepo:   repo.FavoriteRepo,
		reviewRepo:     repo.ReviewRepo,
		placesAPI:      repo.PlacesAPI,
	}
}
