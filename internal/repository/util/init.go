package util

import (
	"net/http"
	"time"

	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
	placesapi "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/places-api"
	db "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/postgres"
)

type RepoWrapper struct {
	RestaurantRepo repository.RestaurantRepository
	FavoriteRepo   repository.FavoriteRepository
	ReviewRepo     repository.ReviewRepository
	UserRepo       repository.UserRepository
	PlacesAPI      repository.PlacesAPIRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	var dbConnection *db.RepoDatabase

	dbConnection, err = db.Init(config)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	repoWrapper = &RepoWrapper{
		RestaurantRepo: dbConnection,
		FavoriteRepo:   dbConnection,
		ReviewRepo:     dbConnection,
		UserRepo:       dbConnection,
		PlacesAPI:      placesapi.New(config, httpClient),
	}

	return
}
