package postgres

import (
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"gorm.io/gorm/clause"
)

// GetOrCreate inserts a restaurant for placeID unless one already exists.
// The insert uses ON CONFLICT DO NOTHING against the unique place_id index,
// so concurrent requests for the same place cannot create duplicates.
func (r *RepoDatabase) GetOrCreate(placeID string, defaults entity.Restaurant) (*entity.Restaurant, bool, error) {
	defaults.PlaceID = placeID
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "place_id"}},
		DoNothing: true,
	}).Create(&defaults)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 1 {
		return &defaults, true, nil
	}

	// Conflict: another row owns this place_id, read it back.
	var existing entity.Restaurant
	if err := r.DB.Where("place_id = ?", placeID).First(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// Reconcile upgrades sentinel fields with non-sentinel candidate values.
// It saves only when something actually changed.
func (r *RepoDatabase) Reconcile(restaurant *entity.Restaurant, candidate entity.Restaurant) (bool, error) {
	updated := false
	if restaurant.Name == entity.UnknownName && candidate.Name != "" && candidate.Name != entity.UnknownName {
		restaurant.Name = candidate.Name
		updated = true
	}
	if restaurant.Address == entity.NoAddress && candidate.Address != "" && candidate.Address != entity.NoAddress {
		restaurant.Address = candidate.Address
		updated = true
	}
	if restaurant.CuisineType == entity.UnknownCuisine && candidate.CuisineType != "" && candidate.CuisineType != entity.UnknownCuisine {
		restaurant.CuisineType = candidate.CuisineType
		updated = true
	}
	if restaurant.PhoneNumber == entity.NoPhoneNumber && candidate.PhoneNumber != "" && candidate.PhoneNumber != entity.NoPhoneNumber {
		restaurant.PhoneNumber = candidate.PhoneNumber
		updated = true
	}
	if !updated {
		return false, nil
	}
	if err := r.DB.Save(restaurant).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *RepoDatabase) FindByPlaceID(placeID string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.DB.Where("place_id = ?", placeID).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
