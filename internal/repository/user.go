package repository

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

type UserRepository interface {
	CreateUser(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	FindByID(id uint) (*entity.User, error)
}
