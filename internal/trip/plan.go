package trip

import (
	"context"
	"fmt"

	"github.com/herathua/tripplanner-sub000/internal/expense"
	"github.com/herathua/tripplanner-sub000/internal/itinerary"
	"github.com/herathua/tripplanner-sub000/internal/place"
)

// Plan is the aggregate document the planner edits: the trip header plus
// its itinerary days, places and expenses, saved and restored in one round
// trip.
type Plan struct {
	TripID      int64             `json:"tripId,omitempty"`
	Title       string            `json:"title"`
	Destination string            `json:"destination"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Budget      float64           `json:"budget"`
	Description string            `json:"description,omitempty"`
	Days        []itinerary.Day   `json:"days"`
	Places      []place.Remote    `json:"places"`
	Expenses    []expense.Expense `json:"expenses"`
}

// SavePlan persists the whole planning document for a trip.
func (s *Service) SavePlan(ctx context.Context, id int64, p Plan) error {
	p.TripID = id
	header := Trip{
		Title:       p.Title,
		Destination: p.Destination,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
	}
	if err := header.Validate(); err != nil {
		return err
	}
	return s.api.Post(ctx, fmt.Sprintf("/trips/%d/plan", id), nil, p, nil)
}

// GetPlan loads the planning document. Slices come back non-nil so callers
// can append without checking.
func (s *Service) GetPlan(ctx context.Context, id int64) (Plan, error) {
	var out Plan
	if err := s.api.Get(ctx, fmt.Sprintf("/trips/%d/plan", id), nil, &out); err != nil {
		return Plan{}, err
	}
	if out.Days == nil {
		out.Days = []itinerary.Day{}
	}
	if out.Places == nil {
		out.Places = []place.Remote{}
	}
	if out.Expenses == nil {
		out.Expenses = []expense.Expense{}
	}
	return out, nil
}
