package service

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

type AuthService interface {
	Register(req entity.RegisterRequest) (*entity.TokenResponse, error)
	Login(req entity.LoginRequest) (*entity.TokenResponse, error)

	// ParseToken validates a session token and returns the user id it
	// was issued for.
	ParseToken(token string) (uint, error)
}
