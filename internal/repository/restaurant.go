package repository

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

type RestaurantRepository interface {
	// GetOrCreate returns the restaurant stored for placeID, creating it
	// from defaults when absent. Creation relies on the unique index on
	// place_id, so two concurrent calls never produce duplicate rows.
	GetOrCreate(placeID string, defaults entity.Restaurant) (*entity.Restaurant, bool, error)

	// Reconcile upgrades sentinel fields of the stored record with
	// non-sentinel candidate values and reports whether anything changed.
	// Known values are never overwritten.
	Reconcile(restaurant *entity.Restaurant, candidate entity.Restaurant) (bool, error)

	FindByPlaceID(placeID string) (*entity.Restaurant, error)
}
