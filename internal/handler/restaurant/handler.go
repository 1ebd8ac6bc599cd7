package restaurant

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/handler/middleware"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
)

func (a *ApiWrapper) GetRestaurantDetail(c echo.Context) error {
	placeID := c.Param("place_id")
	userID := middleware.UserID(c)

	detail, err := a.RestaurantService.GetRestaurantDetail(placeID, userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}

func (a *ApiWrapper) GetMap(c echo.Context) error {
	var params entity.MapQueryParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: "Invalid query parameters."})
	}

	result, err := a.RestaurantService.SearchNearby(params, middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (a *ApiWrapper) GetFavorites(c echo.Context) error {
	result, err := a.RestaurantService.ListFavorites(middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (a *ApiWrapper) AddFavorite(c echo.Context) error {
	var req entity.AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: "Invalid request."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: "Place ID is required."})
	}

	message, err := a.RestaurantService.AddFavorite(middleware.UserID(c), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, entity.MessageResponse{Message: message})
}

func (a *ApiWrapper) RemoveFavorite(c echo.Context) error {
	placeID := c.Param("place_id")

	if err := a.RestaurantService.RemoveFavorite(middleware.UserID(c), placeID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, entity.MessageResponse{Message: "Removed from favorites."})
}

func (a *ApiWrapper) SubmitReview(c echo.Context) error {
	var req entity.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: "Invalid request."})
	}

	review, err := a.RestaurantService.SubmitReview(middleware.UserID(c), c.Param("place_id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, entity.MessageResponse{Message: err.Error()})
	case errors.Is(err, service.ErrRemoteLookup):
		return c.JSON(http.StatusBadGateway, entity.MessageResponse{Message: err.Error()})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, entity.MessageResponse{Message: "Internal server error"})
}
