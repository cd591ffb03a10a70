package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"googlemaps.github.io/maps"
)

var (
	// ErrNoMatch is returned when the provider knows no place for the address.
	ErrNoMatch = errors.New("location could not be found")
	// ErrOverQueryLimit is returned when the provider quota is exhausted.
	ErrOverQueryLimit = errors.New("geocoding quota exceeded")
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Point, error)
}

// Location is a postal location as entered by a user.
type Location struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Address joins the non-empty parts of the location.
func (l Location) Address() string {
	var parts []string
	for _, p := range []string{l.Street, l.City, l.Region, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the first match reported by the Google Geocoding API.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (Point, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		if strings.Contains(err.Error(), "OVER_QUERY_LIMIT") {
			return Point{}, ErrOverQueryLimit
		}
		return Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return Point{}, ErrNoMatch
	}
	loc := results[0].Geometry.Location
	return Point{Lat: loc.Lat, Lon: loc.Lng}, nil
}

// CachedGeocoder remembers successful lookups in Redis. Redis failures are
// logged and fall through to the wrapped geocoder.
type CachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration, logger *log.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(address string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (Point, error) {
	key := cacheKey(address)
	data, err := g.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p Point
		if err := json.Unmarshal(data, &p); err == nil {
			return p, nil
		}
		g.logger.Printf("discarding corrupt geocode cache entry %s", key)
	case err != redis.Nil:
		g.logger.Printf("geocode cache read failed: %v", err)
	}

	p, err := g.next.Geocode(ctx, address)
	if err != nil {
		return Point{}, err
	}
	if data, err := json.Marshal(p); err == nil {
		if err := g.client.Set(ctx, key, data, g.ttl).Err(); err != nil {
			g.logger.Printf("geocode cache write failed: %v", err)
		}
	}
	return p, nil
}
