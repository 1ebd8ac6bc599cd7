package restaurant

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
	placesapi "github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/places-api"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
	"gorm.io/gorm"
)

const defaultSearchRadius = 5000

// GetRestaurantDetail resolves a consolidated detail view for placeID:
// local record first, remote lookup when absent, then a refresh fetch to
// reconcile cuisine and phone before assembling the response.
func (s *RestaurantService) GetRestaurantDetail(placeID string, userID uint) (*entity.RestaurantDetailResponse, error) {
	rec, err := s.restaurantRepo.FindByPlaceID(placeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		details, lookupErr := s.placesAPI.GetPlaceDetails(placeID, placesapi.DetailFields)
		if lookupErr != nil {
			// No local record and no remote data: nothing to show,
			// and nothing gets created.
			return nil, fmt.Errorf("%w: %v", service.ErrRemoteLookup, lookupErr)
		}
		rec, _, err = s.restaurantRepo.GetOrCreate(placeID, entity.Restaurant{
			Name:        details.Name,
			Address:     details.Address,
			Latitude:    details.Latitude,
			Longitude:   details.Longitude,
			CuisineType: inferCuisine(details.Types, details.Name),
			PhoneNumber: details.PhoneNumber,
		})
		if err != nil {
			return nil, err
		}
	}

	resp := &entity.RestaurantDetailResponse{Restaurant: *rec}

	// Refresh from the remote service on every detail view, even right
	// after the record was created from the same payload. Redundant in
	// that case; skipping the second fetch for fresh records is a known
	// optimization opportunity.
	details, err := s.placesAPI.GetPlaceDetails(placeID, placesapi.DetailFields)
	if err != nil {
		log.Printf("refresh lookup failed for place_id=%s, serving stored data: %v", placeID, err)
	} else {
		candidate := entity.Restaurant{
			CuisineType: inferCuisine(details.Types, rec.Name),
			PhoneNumber: details.PhoneNumber,
		}
		if _, err := s.restaurantRepo.Reconcile(rec, candidate); err != nil {
			return nil, err
		}
		resp.Restaurant = *rec
		resp.Rating = details.Rating
		resp.GoogleReviews = details.Reviews
	}

	if userID != 0 {
		isFavorite, err := s.favoriteRepo.Exists(userID, placeID)
		if err != nil {
			return nil, err
		}
		resp.IsFavorite = isFavorite
	}

	reviews, err := s.reviewRepo.ListByRestaurant(rec.ID)
	if err != nil {
		return nil, err
	}
	resp.UserReviews = reviews

	return resp, nil
}

// AddFavorite registers placeID as a favorite of userID, creating or
// enriching the local restaurant record along the way. The external
// lookup is best effort: on failure the record keeps sentinel values.
func (s *RestaurantService) AddFavorite(userID uint, req entity.AddFavoriteRequest) (string, error) {
	if req.PlaceID == "" {
		return "", fmt.Errorf("%w: place_id is required", service.ErrValidation)
	}

	name := req.Name
	if name == "" {
		name = entity.UnknownName
	}
	address := req.Address
	if address == "" {
		address = entity.NoAddress
	}

	candidate := entity.Restaurant{
		Name:        name,
		Address:     address,
		CuisineType: entity.UnknownCuisine,
		PhoneNumber: entity.NoPhoneNumber,
	}
	details, err := s.placesAPI.GetPlaceDetails(req.PlaceID, placesapi.DetailFields)
	if err != nil {
		log.Printf("place details lookup failed for place_id=%s: %v", req.PlaceID, err)
	} else {
		candidate.Latitude = details.Latitude
		candidate.Longitude = details.Longitude
		candidate.CuisineType = inferCuisine(details.Types, name)
		candidate.PhoneNumber = details.PhoneNumber
	}

	rec, created, err := s.restaurantRepo.GetOrCreate(req.PlaceID, candidate)
	if err != nil {
		return "", err
	}
	if !created {
		if _, err := s.restaurantRepo.Reconcile(rec, candidate); err != nil {
			return "", err
		}
	}

	added, err := s.favoriteRepo.Add(entity.Favorite{
		UserID:  userID,
		PlaceID: req.PlaceID,
		Name:    name,
		Address: address,
		Rating:  req.Rating,
	})
	if err != nil {
		return "", err
	}
	if added {
		return "Added to favorites.", nil
	}
	return "Already in favorites.", nil
}

func (s *RestaurantService) RemoveFavorite(userID uint, placeID string) error {
	err := s.favoriteRepo.Remove(userID, placeID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return fmt.Errorf("%w: favorite for place_id=%s", service.ErrNotFound, placeID)
	}
	return err
}

// ListFavorites returns the user's favorites enriched with fresh place
// data. When a lookup fails the stored snapshot is served instead.
func (s *RestaurantService) ListFavorites(userID uint) (*entity.FavoritesResponse, error) {
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]entity.FavoriteView, 0, len(favorites))
	cuisineSet := make(map[string]bool)
	for _, fav := range favorites {
		details, err := s.placesAPI.GetPlaceDetails(fav.PlaceID, placesapi.FavoriteFields)
		if err != nil {
			log.Printf("favorite enrichment failed for place_id=%s, using snapshot: %v", fav.PlaceID, err)
			views = append(views, entity.FavoriteView{
				PlaceID:     fav.PlaceID,
				Name:        fav.Name,
				Address:     fav.Address,
				Rating:      fav.Rating,
				CuisineType: entity.UnknownCuisine,
			})
			continue
		}

		cuisine := inferCuisine(details.Types, details.Name)
		if cuisine != entity.UnknownCuisine {
			cuisineSet[cuisine] = true
		}
		rating := details.Rating
		views = append(views, entity.FavoriteView{
			PlaceID:     fav.PlaceID,
			Name:        details.Name,
			Address:     details.Address,
			Rating:      &rating,
			CuisineType: cuisine,
			ImageURL:    s.placesAPI.PhotoURL(details.PhotoReference, 400),
		})
	}

	cuisineOptions := make([]string, 0, len(cuisineSet))
	for cuisine := range cuisineSet {
		cuisineOptions = append(cuisineOptions, cuisine)
	}
	sort.Strings(cuisineOptions)

	return &entity.FavoritesResponse{
		Favorites:      views,
		CuisineOptions: cuisineOptions,
	}, nil
}

// SubmitReview validates and persists a user review. The restaurant must
// already exist locally; a rating outside 1-5 or an empty comment is
// rejected without touching the store.
func (s *RestaurantService) SubmitReview(userID uint, placeID string, req entity.ReviewRequest) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", service.ErrValidation)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, fmt.Errorf("%w: comment must not be empty", service.ErrValidation)
	}

	rec, err := s.restaurantRepo.FindByPlaceID(placeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant for place_id=%s", service.ErrNotFound, placeID)
		}
		return nil, err
	}

	review := &entity.Review{
		UserID:       userID,
		RestaurantID: rec.ID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

// SearchNearby runs a nearby restaurant search and seeds the local store
// with a record per result, cuisine left unknown until a detail view
// classifies it.
func (s *RestaurantService) SearchNearby(params entity.MapQueryParams, userID uint) (*entity.MapResponse, error) {
	radius := params.Radius
	if radius <= 0 {
		radius = defaultSearchRadius
	}

	results, err := s.placesAPI.SearchNearby(params.Lat, params.Lng, radius, params.Keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrRemoteLookup, err)
	}

	for _, place := range results {
		defaults := entity.Restaurant{
			Name:        place.Name,
			Address:     place.Vicinity,
			CuisineType: entity.UnknownCuisine,
			PhoneNumber: entity.NoPhoneNumber,
		}
		if defaults.Name == "" {
			defaults.Name = entity.UnknownName
		}
		if defaults.Address == "" {
			defaults.Address = entity.NoAddress
		}
		if place.Geometry != nil {
			defaults.Latitude = place.Geometry.Location.Lat
			defaults.Longitude = place.Geometry.Location.Lng
		}
		if _, _, err := s.restaurantRepo.GetOrCreate(place.PlaceID, defaults); err != nil {
			return nil, err
		}
	}

	userFavorites := []string{}
	if userID != 0 {
		favorites, err := s.favoriteRepo.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		for _, fav := range favorites {
			userFavorites = append(userFavorites, fav.PlaceID)
		}
	}

	return &entity.MapResponse{
		Results:       results,
		UserFavorites: userFavorites,
	}, nil
}
