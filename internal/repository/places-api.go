package repository

import "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"

type PlacesAPIRepository interface {
	// GetPlaceDetails fetches the place record for placeID with the given
	// field set. A non-OK remote status is returned as a *StatusError;
	// partial payloads (missing geometry or phone) are normalized to
	// sentinel values, not treated as errors.
	GetPlaceDetails(placeID string, fields string) (*entity.PlaceDetails, error)

	// SearchNearby looks up places of type restaurant around (lat, lng)
	// within radius meters, optionally filtered by keyword.
	SearchNearby(lat, lng float64, radius int, keyword string) ([]entity.NearbyPlaceAPI, error)

	// PhotoURL builds the public photo URL for a photo reference.
	PhotoURL(photoReference string, maxWidth int) string
}
