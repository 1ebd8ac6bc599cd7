package restaurant

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/handler/middleware"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type stubAuthService struct{}

func (s *stubAuthService) Register(req entity.RegisterRequest) (*entity.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthService) Login(req entity.LoginRequest) (*entity.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthService) ParseToken(token string) (uint, error) {
	if token == "valid-token" {
		return 7, nil
	}
	return 0, service.ErrInvalidCredentials
}

type stubRestaurantService struct {
	detailErr      error
	removeErr      error
	addMessage     string
	addCalls       int
	lastDetailUser uint
}

func (s *stubRestaurantService) GetRestaurantDetail(placeID string, userID uint) (*entity.RestaurantDetailResponse, error) {
	s.lastDetailUser = userID
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return &entity.RestaurantDetailResponse{
		Restaurant: entity.Restaurant{PlaceID: placeID, Name: "Luigi's"},
	}, nil
}

func (s *stubRestaurantService) AddFavorite(userID uint, req entity.AddFavoriteRequest) (string, error) {
	s.addCalls++
	return s.addMessage, nil
}

func (s *stubRestaurantService) RemoveFavorite(userID uint, placeID string) error {
	return s.removeErr
}

func (s *stubRestaurantService) ListFavorites(userID uint) (*entity.FavoritesResponse, error) {
	return &entity.FavoritesResponse{Favorites: []entity.FavoriteView{}, CuisineOptions: []string{}}, nil
}

func (s *stubRestaurantService) SubmitReview(userID uint, placeID string, req entity.ReviewRequest) (*entity.Review, error) {
	return &entity.Review{ID: 1, UserID: userID, Rating: req.Rating, Comment: req.Comment}, nil
}

func (s *stubRestaurantService) SearchNearby(params entity.MapQueryParams, userID uint) (*entity.MapResponse, error) {
	return &entity.MapResponse{Results: []entity.NearbyPlaceAPI{}, UserFavorites: []string{}}, nil
}

func newTestServer(svc service.RestaurantService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	api := ApiWrapper{RestaurantService: svc}
	api.registerRouter(e, middleware.New(&stubAuthService{}))
	return e
}

func doRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	e := newTestServer(&stubRestaurantService{})

	rec := doRequest(e, http.MethodPost, "/api/v1/restaurant/place-1/reviews", "", `{"rating": 5, "comment": "great"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/v1/restaurant/place-1/reviews", "bogus", `{"rating": 5, "comment": "great"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitReviewAuthenticated(t *testing.T) {
	e := newTestServer(&stubRestaurantService{})

	rec := doRequest(e, http.MethodPost, "/api/v1/restaurant/place-1/reviews", "valid-token", `{"rating": 5, "comment": "great"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddFavoriteMissingPlaceID(t *testing.T) {
	svc := &stubRestaurantService{addMessage: "Added to favorites."}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodPost, "/api/v1/favorites", "valid-token", `{"name": "Luigi's"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Place ID is required.")
	assert.Zero(t, svc.addCalls, "the service must not be reached on invalid input")
}

func TestAddFavoriteSuccess(t *testing.T) {
	svc := &stubRestaurantService{addMessage: "Added to favorites."}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodPost, "/api/v1/favorites", "valid-token", `{"place_id": "place-1", "name": "Luigi's"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Added to favorites.")
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	svc := &stubRestaurantService{
		removeErr: fmt.Errorf("%w: favorite for place_id=place-1", service.ErrNotFound),
	}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodDelete, "/api/v1/favorites/place-1", "valid-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRestaurantDetailAnonymous(t *testing.T) {
	svc := &stubRestaurantService{}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/v1/restaurant/place-1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(0), svc.lastDetailUser, "anonymous callers are passed through as user 0")
}

func TestGetRestaurantDetailAuthenticated(t *testing.T) {
	svc := &stubRestaurantService{}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/v1/restaurant/place-1", "valid-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), svc.lastDetailUser)
}

func TestGetRestaurantDetailRemoteLookupFailure(t *testing.T) {
	svc := &stubRestaurantService{
		detailErr: fmt.Errorf("%w: places API returned status NOT_FOUND", service.ErrRemoteLookup),
	}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/v1/restaurant/unseen", "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "details not found")
}

func TestGetFavoritesRequiresAuth(t *testing.T) {
	e := newTestServer(&stubRestaurantService{})

	rec := doRequest(e, http.MethodGet, "/api/v1/favorites", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMapIsPublic(t *testing.T) {
	e := newTestServer(&stubRestaurantService{})

	rec := doRequest(e, http.MethodGet, "/api/v1/map?lat=33.7&lng=-84.3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
