package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service/util"
)

type ApiWrapper struct {
	AuthService service.AuthService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		AuthService: servWrapper.AuthService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/auth")
	group.POST("/register", a.Register)
	group.POST("/login", a.Login)
}
