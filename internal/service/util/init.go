package util

import (
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/util"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service/auth"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service/restaurant"
)

type ServiceWrapper struct {
	RestaurantService service.RestaurantService
	AuthService       service.AuthService
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ServiceWrapper {
	return &ServiceWrapper{
		RestaurantService: restaurant.New(config, repo),
		AuthService:       auth.New(config, repo),
	}
}
