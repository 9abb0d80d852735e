package expense

import (
	"context"
	"fmt"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// Service talks to the expense endpoints.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) ByTrip(ctx context.Context, tripID int64) ([]Expense, error) {
	var out []Expense
	if err := s.api.Get(ctx, fmt.Sprintf("/expenses/trip/%d", tripID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Expense, error) {
	var out Expense
	if err := s.api.Get(ctx, fmt.Sprintf("/expenses/%d", id), nil, &out); err != nil {
		return Expense{}, err
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, e Expense) (Expense, error) {
	var out Expense
	if err := s.api.Post(ctx, "/expenses", nil, e, &out); err != nil {
		return Expense{}, err
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, e Expense) (Expense, error) {
	var out Expense
	if err := s.api.Put(ctx, fmt.Sprintf("/expenses/%d", id), nil, e, &out); err != nil {
		return Expense{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

// Total returns the backend-computed expense total for a trip.
func (s *Service) Total(ctx context.Context, tripID int64) (float64, error) {
	var out float64
	if err := s.api.Get(ctx, fmt.Sprintf("/expenses/trip/%d/total", tripID), nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}

func (s *Service) ByTripAndCategory(ctx context.Context, tripID int64, c Category) ([]Expense, error) {
	var out []Expense
	if err := s.api.Get(ctx, fmt.Sprintf("/expenses/trip/%d/category/%s", tripID, c), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ByTripAndDay(ctx context.Context, tripID int64, dayNumber int) ([]Expense, error) {
	var out []Expense
	if err := s.api.Get(ctx, fmt.Sprintf("/expenses/trip/%d/day/%d", tripID, dayNumber), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
