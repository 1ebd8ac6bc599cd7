package postgres

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

func (r *RepoDatabase) CreateUser(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *RepoDatabase) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *RepoDatabase) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
