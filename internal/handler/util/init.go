package util

import (
	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/handler/auth"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/handler/middleware"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/handler/restaurant"
	serv "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service/util"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	authMW := middleware.New(servWrapper.AuthService)
	auth.InitRoute(e, servWrapper)
	restaurant.InitRoute(e, servWrapper, authMW)
}
