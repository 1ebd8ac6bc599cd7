package placesapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	gocache "github.com/patrickmn/go-cache"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository"
)

// DetailFields is the field set requested on restaurant detail views.
const DetailFields = "place_id,name,rating,formatted_address,geometry,types,formatted_phone_number,reviews"

// FavoriteFields is the lighter field set used when enriching favorites.
const FavoriteFields = "name,rating,formatted_address,photo,types"

func (c *PlacesClient) GetPlaceDetails(placeID string, fields string) (*entity.PlaceDetails, error) {
	cacheKey := placeID + "|" + fields
	if cached, found := c.cache.Get(cacheKey); found {
		details := cached.(entity.PlaceDetails)
		return &details, nil
	}

	requestURL := fmt.Sprintf("%s/details/json?place_id=%s&fields=%s&key=%s",
		c.Config.PlacesBaseURL,
		url.QueryEscape(placeID),
		url.QueryEscape(fields),
		c.Config.PlacesAPIKey,
	)

	resp, err := c.Client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("places API returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		return nil, fmt.Errorf("places API returned status: %d", resp.StatusCode)
	}

	var payload entity.PlaceDetailsResponseAPI
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response from places API: %w", err)
	}

	if payload.Status != "OK" {
		log.Printf("places API error for place_id=%s: status=%s, error_message=%s",
			placeID, payload.Status, payload.ErrorMessage)
		return nil, &repository.StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	details := normalizeDetails(placeID, payload.Result)
	c.cache.Set(cacheKey, details, gocache.DefaultExpiration)
	return &details, nil
}

// normalizeDetails maps the wire payload onto a PlaceDetails record.
// Partial payloads degrade to sentinel values instead of failing.
func normalizeDetails(placeID string, result entity.PlaceResultAPI) entity.PlaceDetails {
	details := entity.PlaceDetails{
		PlaceID:     placeID,
		Name:        result.Name,
		Address:     result.FormattedAddress,
		Types:       result.Types,
		PhoneNumber: result.FormattedPhoneNumber,
		Rating:      result.Rating,
		Reviews:     result.Reviews,
	}
	if details.Name == "" {
		details.Name = entity.UnknownName
	}
	if details.Address == "" {
		details.Address = entity.NoAddress
	}
	if details.PhoneNumber == "" {
		details.PhoneNumber = entity.NoPhoneNumber
	}
	if result.Geometry != nil {
		details.Latitude = result.Geometry.Location.Lat
		details.Longitude = result.Geometry.Location.Lng
	}
	if len(result.Photos) > 0 {
		details.PhotoReference = result.Photos[0].PhotoReference
	}
	return details
}

func (c *PlacesClient) SearchNearby(lat, lng float64, radius int, keyword string) ([]entity.NearbyPlaceAPI, error) {
	requestURL := fmt.Sprintf("%s/nearbysearch/json?location=%f,%f&radius=%d&type=restaurant&key=%s",
		c.Config.PlacesBaseURL, lat, lng, radius, c.Config.PlacesAPIKey)
	if keyword != "" {
		requestURL += "&keyword=" + url.QueryEscape(keyword)
	}

	resp, err := c.Client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status: %d", resp.StatusCode)
	}

	var payload entity.NearbySearchResponseAPI
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response from places API: %w", err)
	}

	// ZERO_RESULTS is an empty result set, not a failure.
	if payload.Status == "ZERO_RESULTS" {
		return []entity.NearbyPlaceAPI{}, nil
	}
	if payload.Status != "OK" {
		log.Printf("places API nearby search error: status=%s, error_message=%s",
			payload.Status, payload.ErrorMessage)
		return nil, &repository.StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	return payload.Results, nil
}

func (c *PlacesClient) PhotoURL(photoReference string, maxWidth int) string {
	if photoReference == "" {
		return ""
	}
	return fmt.Sprintf("%s/photo?maxwidth=%d&photoreference=%s&key=%s",
		c.Config.PlacesBaseURL, maxWidth, url.QueryEscape(photoReference), c.Config.PlacesAPIKey)
}
