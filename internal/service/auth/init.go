package auth

import (
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/util"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *AuthService {
	return &AuthService{
		userRepo:  repo.UserRepo,
		jwtSecret: []byte(config.JWTSecret),
	}
}
