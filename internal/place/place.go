package place

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/herathua/tripplanner-sub000/internal/shared/geo"
)

var (
	ErrNameRequired   = errors.New("place: name and location are required")
	ErrBadCoordinates = errors.New("place: coordinates are invalid or out of range")
)

// Category is a backend enum value.
type Category string

const (
	CategoryRestaurant    Category = "RESTAURANT"
	CategoryHotel         Category = "HOTEL"
	CategoryAttraction    Category = "ATTRACTION"
	CategoryShopping      Category = "SHOPPING"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryCultural      Category = "CULTURAL"
	CategoryNature        Category = "NATURE"
	CategoryTransport     Category = "TRANSPORT"
	CategorySports        Category = "SPORTS"
	CategoryReligious     Category = "RELIGIOUS"
	CategoryHistorical    Category = "HISTORICAL"
	CategoryOther         Category = "OTHER"
)

// categoryMap translates the fixed frontend category strings. Anything not
// listed maps to OTHER.
var categoryMap = map[string]Category{
	"city":          CategoryOther,
	"attraction":    CategoryAttraction,
	"restaurant":    CategoryRestaurant,
	"hotel":         CategoryHotel,
	"transport":     CategoryTransport,
	"shopping":      CategoryShopping,
	"entertainment": CategoryEntertainment,
	"cultural":      CategoryCultural,
	"nature":        CategoryNature,
	"sports":        CategorySports,
	"religious":     CategoryReligious,
	"historical":    CategoryHistorical,
	"other":         CategoryOther,
}

// CategoryForBackend maps a frontend category string to its backend enum.
// The mapping is total: unknown categories become OTHER.
func CategoryForBackend(frontend string) Category {
	if c, ok := categoryMap[strings.ToLower(frontend)]; ok {
		return c
	}
	return CategoryOther
}

// Place is the client-side shape used by forms and the map view.
type Place struct {
	ID          int64
	TripID      int64
	Name        string
	Location    string
	Description string
	Category    string
	Rating      int
	Cost        float64
	Duration    float64
	Lat         float64
	Lng         float64
	Photos      []string
}

// Payload is the backend shape a place is written as.
type Payload struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Rating      int      `json:"rating"`
	Cost        float64  `json:"cost"`
	Duration    float64  `json:"duration"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Photos      []string `json:"photos"`
}

// BuildPayload validates and normalizes a place before submission, clamping
// fields into the ranges the backend enforces: rating becomes an integer in
// [1,5], cost a non-negative 2-decimal amount, duration at least 0.1 hours
// with 1 decimal, coordinates 6 decimals. Out-of-range coordinates fail the
// check rather than being clamped.
func BuildPayload(p Place) (Payload, error) {
	name := strings.TrimSpace(p.Name)
	location := strings.TrimSpace(p.Location)
	if name == "" || location == "" {
		return Payload{}, ErrNameRequired
	}
	if !geo.ValidLat(p.Lat) || !geo.ValidLng(p.Lng) {
		return Payload{}, ErrBadCoordinates
	}

	rating := p.Rating
	if rating == 0 {
		rating = 4
	}
	rating = int(math.Max(1, math.Min(5, float64(rating))))

	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}

	return Payload{
		Name:        name,
		Location:    location,
		Description: strings.TrimSpace(p.Description),
		Category:    CategoryForBackend(p.Category),
		Rating:      rating,
		Cost:        math.Max(0, geo.Round(p.Cost, 2)),
		Duration:    math.Max(0.1, geo.Round(p.Duration, 1)),
		Latitude:    geo.Round(p.Lat, 6),
		Longitude:   geo.Round(p.Lng, 6),
		Photos:      photos,
	}, nil
}

// SortByDistance orders places nearest-first from the given point.
func SortByDistance(places []Place, lat, lng float64) {
	sort.SliceStable(places, func(i, j int) bool {
		di := geo.HaversineKm(lat, lng, places[i].Lat, places[i].Lng)
		dj := geo.HaversineKm(lat, lng, places[j].Lat, places[j].Lng)
		return di < dj
	})
}
