package postgres

import (
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
	"gorm.io/gorm/clause"
)

// Add inserts a favorite unless the (user_id, place_id) pair already exists.
// The unique composite index resolves the race between concurrent adds;
// a conflicting insert is a no-op, not a constraint error.
func (r *RepoDatabase) Add(favorite entity.Favorite) (bool, error) {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "place_id"}},
		DoNothing: true,
	}).Create(&favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *RepoDatabase) Remove(userID uint, placeID string) error {
	result := r.DB.Where("user_id = ? AND place_id = ?", userID, placeID).Delete(&entity.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}
	return nil
}

func (r *RepoDatabase) ListByUser(userID uint) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *RepoDatabase) Exists(userID uint, placeID string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
