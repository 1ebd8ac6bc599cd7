package restaurant

import (
	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/handler/middleware"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service/util"
)

type ApiWrapper struct {
	RestaurantService service.RestaurantService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper, authMW *middleware.AuthMiddleware) {
	api := ApiWrapper{
		RestaurantService: servWrapper.RestaurantService,
	}
	api.registerRouter(e, authMW)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo, authMW *middleware.AuthMiddleware) {
	group := e.Group("/api/v1")
	group.GET("/map", a.GetMap, authMW.Optional)
	group.GET("/restaurant/:place_id", a.GetRestaurantDetail, authMW.Optional)
	group.POST("/restaurant/:place_id/reviews", a.SubmitReview, authMW.Require)
	group.GET("/favorites", a.GetFavorites, authMW.Require)
	group.POST("/favorites", a.AddFavorite, authMW.Require)
	group.DELETE("/favorites/:place_id", a.RemoveFavorite, authMW.Require)
}
