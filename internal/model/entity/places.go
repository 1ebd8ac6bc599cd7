package entity

// PlaceDetailsResponseAPI is the wire format returned by the places details endpoint
type PlaceDetailsResponseAPI struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Result       PlaceResultAPI `json:"result"`
}

// PlaceResultAPI is the nested result object of a details response
type PlaceResultAPI struct {
	PlaceID              string           `json:"place_id"`
	Name                 string           `json:"name"`
	FormattedAddress     string           `json:"formatted_address"`
	Geometry             *GeometryAPI     `json:"geometry,omitempty"`
	Types                []string         `json:"types"`
	FormattedPhoneNumber string           `json:"formatted_phone_number"`
	Rating               float64          `json:"rating"`
	Reviews              []PlaceReviewAPI `json:"reviews"`
	Photos               []PlacePhotoAPI  `json:"photos"`
}

type GeometryAPI struct {
	Location LocationAPI `json:"location"`
}

type LocationAPI struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceReviewAPI is a review authored on the external places service
type PlaceReviewAPI struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
}

type PlacePhotoAPI struct {
	PhotoReference string `json:"photo_reference"`
}

// NearbySearchResponseAPI is the wire format returned by the nearby search endpoint
type NearbySearchResponseAPI struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Results      []NearbyPlaceAPI `json:"results"`
}

// NearbyPlaceAPI is one result of a nearby search
type NearbyPlaceAPI struct {
	PlaceID  string       `json:"place_id"`
	Name     string       `json:"name"`
	Vicinity string       `json:"vicinity"`
	Geometry *GeometryAPI `json:"geometry,omitempty"`
	Rating   float64      `json:"rating"`
	Types    []string     `json:"types"`
}

// PlaceDetails is the normalized place record produced by the places client.
// Missing geometry becomes (0, 0), a missing phone becomes the sentinel.
type PlaceDetails struct {
	PlaceID        string           `json:"place_id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	Types          []string         `json:"types"`
	PhoneNumber    string           `json:"phone_number"`
	Rating         float64          `json:"rating"`
	Reviews        []PlaceReviewAPI `json:"reviews,omitempty"`
	PhotoReference string           `json:"-"`
}

// AddFavoriteRequest is the request body for adding a favorite
type AddFavoriteRequest struct {
	PlaceID string   `json:"place_id" validate:"required"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  *float64 `json:"rating,omitempty"`
}

// ReviewRequest is the request body for submitting a restaurant review
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// MapQueryParams represents query parameters for the nearby map search
type MapQueryParams struct {
	Lat     float64 `query:"lat"`
	Lng     float64 `query:"lng"`
	Radius  int     `query:"radius"`
	Keyword string  `query:"keyword"`
}

// MessageResponse is a simple JSON message envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// RestaurantDetailResponse is the consolidated restaurant detail view
type RestaurantDetailResponse struct {
	Restaurant    Restaurant       `json:"restaurant"`
	Rating        float64          `json:"rating"`
	IsFavorite    bool             `json:"is_favorite"`
	GoogleReviews []PlaceReviewAPI `json:"google_reviews"`
	UserReviews   []Review         `json:"user_reviews"`
}

// FavoriteView is one entry of the favorites listing, enriched with
// fresh place data when the external lookup succeeds
type FavoriteView struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating,omitempty"`
	CuisineType string   `json:"cuisine_type"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// FavoritesResponse is the favorites listing payload
type FavoritesResponse struct {
	Favorites      []FavoriteView `json:"favorites"`
	CuisineOptions []string       `json:"cuisine_options"`
}

// MapResponse is the nearby search payload for the map view
type MapResponse struct {
	Results       []NearbyPlaceAPI `json:"results"`
	UserFavorites []string         `json:"user_favorites"`
}
