package place

import (
	"context"
	"fmt"
	"net/url"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// Remote is the backend representation of a saved place.
type Remote struct {
	ID          int64    `json:"id"`
	TripID      int64    `json:"tripId"`
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

// Service talks to the place endpoints.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Create validates, normalizes and saves a place under a trip.
func (s *Service) Create(ctx context.Context, tripID int64, p Place) (Remote, error) {
	payload, err := BuildPayload(p)
	if err != nil {
		return Remote{}, err
	}
	var out Remote
	if err := s.api.Post(ctx, fmt.Sprintf("/trips/%d/places", tripID), nil, payload, &out); err != nil {
		return Remote{}, err
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, p Place) (Remote, error) {
	payload, err := BuildPayload(p)
	if err != nil {
		return Remote{}, err
	}
	var out Remote
	if err := s.api.Put(ctx, fmt.Sprintf("/places/%d", id), nil, payload, &out); err != nil {
		return Remote{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/places/%d", id), nil, nil)
}

func (s *Service) Get(ctx context.Context, id int64) (Remote, error) {
	var out Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/places/%d", id), nil, &out); err != nil {
		return Remote{}, err
	}
	return out, nil
}

// ListByTrip returns every place saved under a trip.
func (s *Service) ListByTrip(ctx context.Context, tripID int64) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/places/trip/%d", tripID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]Remote, error) {
	var out []Remote
	q := url.Values{"query": {query}}
	if err := s.api.Get(ctx, "/places/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ByCategory(ctx context.Context, c Category) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/places/category/%s", c), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ByMinRating(ctx context.Context, min int) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/places/rating/%d", min), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
