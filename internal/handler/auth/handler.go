package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
)

func (a *ApiWrapper) Register(c echo.Context) error {
	var req entity.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: "Invalid request."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: err.Error()})
	}

	token, err := a.AuthService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, entity.MessageResponse{Message: err.Error()})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, entity.MessageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, token)
}

func (a *ApiWrapper) Login(c echo.Context) error {
	var req entity.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: "Invalid request."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entity.MessageResponse{Message: err.Error()})
	}

	token, err := a.AuthService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, entity.MessageResponse{Message: err.Error()})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, entity.MessageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, token)
}
