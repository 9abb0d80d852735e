// Package location wraps the destination search endpoint used by the trip
// creation form's autocomplete.
package location

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

const (
	defaultLanguage = "en"
	defaultLimit    = 3
)

// Result is one destination suggestion, flattened from the provider's
// response for direct display.
type Result struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	HotelCount  int     `json:"hotelCount,omitempty"`
}

// raw mirrors the provider payload relayed by the backend.
type raw struct {
	DestID      string `json:"dest_id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	DestType    string `json:"dest_type"`
	CountryCode string `json:"cc1"`
	Latitude    any    `json:"latitude"`
	Longitude   any    `json:"longitude"`
	ImageURL    string `json:"image_url"`
	Hotels      int    `json:"hotels"`
}

type Service struct {
	client *api.Client
	limit  int
}

func NewService(client *api.Client) *Service {
	return &Service{client: client, limit: defaultLimit}
}

// Search returns up to the configured number of suggestions for a query.
// A blank query returns no results without touching the network.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	q := url.Values{
		"query":        {query},
		"languageCode": {defaultLanguage},
		"limit":        {strconv.Itoa(s.limit)},
	}
	var out []raw
	if err := s.client.Get(ctx, "/locations/search", q, &out); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(out))
	for _, r := range out {
		results = append(results, Result{
			ID:          r.DestID,
			Name:        r.Name,
			Location:    r.Label,
			Type:        r.DestType,
			CountryCode: strings.ToUpper(r.CountryCode),
			Lat:         coord(r.Latitude),
			Lng:         coord(r.Longitude),
			ImageURL:    r.ImageURL,
			HotelCount:  r.Hotels,
		})
	}
	return results, nil
}

// coord tolerates providers that send coordinates as strings.
func coord(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
