package placesapi

import (
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
)

type PlacesClient struct {
	Client *http.Client
	Config *config.AppConfig
	cache  *gocache.Cache
}

func New(config *config.AppConfig, client *http.Client) *PlacesClient {
	ttl := time.Duration(config.PlaceCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PlacesClient{
		Client: client,
		Config: config,
		cache:  gocache.New(ttl, 2*ttl),
	}
}
