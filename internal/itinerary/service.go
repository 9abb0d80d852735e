package itinerary

import (
	"context"
	"fmt"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// Service reads and writes the plan embedded in a trip record.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// FromTrip loads the plan stored on a trip. A trip saved by an older client
// may carry a malformed document; that decodes as an empty plan rather than
// failing the page. Fetch errors still propagate.
func (s *Service) FromTrip(ctx context.Context, tripID int64) (Document, error) {
	var out struct {
		ItineraryData string `json:"itineraryData"`
	}
	if err := s.api.Get(ctx, fmt.Sprintf("/trips/%d", tripID), nil, &out); err != nil {
		return Document{}, err
	}
	doc, err := Parse(out.ItineraryData)
	if err != nil {
		return Document{}, nil
	}
	return doc, nil
}

// SaveToTrip writes the plan back onto the trip record.
func (s *Service) SaveToTrip(ctx context.Context, tripID int64, doc Document) error {
	body := map[string]string{"itineraryData": doc.Encode()}
	return s.api.Put(ctx, fmt.Sprintf("/trips/%d", tripID), nil, body, nil)
}

// Remote is a backend-persisted activity, created once a plan is saved.
type Remote struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"tripId"`
	ItineraryID   int64   `json:"itineraryId,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	StartTime     string  `json:"startTime,omitempty"`
	EndTime       string  `json:"endTime,omitempty"`
	Cost          float64 `json:"cost,omitempty"`
	DurationHours float64 `json:"durationHours,omitempty"`
	Type          Type    `json:"type"`
	Status        Status  `json:"status"`
	DayNumber     int     `json:"dayNumber,omitempty"`
	PlaceID       int64   `json:"placeId,omitempty"`
}

// Activities talks to the standalone activity endpoints.
type Activities struct {
	api *api.Client
}

func NewActivities(client *api.Client) *Activities {
	return &Activities{api: client}
}

func (s *Activities) ByTrip(ctx context.Context, tripID int64) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/activities/trip/%d", tripID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Activities) ByItinerary(ctx context.Context, itineraryID int64) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/activities/itinerary/%d", itineraryID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Activities) Get(ctx context.Context, id int64) (Remote, error) {
	var out Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/activities/%d", id), nil, &out); err != nil {
		return Remote{}, err
	}
	return out, nil
}

func (s *Activities) Create(ctx context.Context, a Remote) (Remote, error) {
	var out Remote
	if err := s.api.Post(ctx, "/activities", nil, a, &out); err != nil {
		return Remote{}, err
	}
	return out, nil
}

func (s *Activities) Update(ctx context.Context, id int64, a Remote) (Remote, error) {
	var out Remote
	if err := s.api.Put(ctx, fmt.Sprintf("/activities/%d", id), nil, a, &out); err != nil {
		return Remote{}, err
	}
	return out, nil
}

func (s *Activities) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/activities/%d", id), nil, nil)
}

func (s *Activities) ByTripAndStatus(ctx context.Context, tripID int64, status Status) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/activities/trip/%d/status/%s", tripID, status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Activities) ByTripAndType(ctx context.Context, tripID int64, typ Type) ([]Remote, error) {
	var out []Remote
	if err := s.api.Get(ctx, fmt.Sprintf("/activities/trip/%d/type/%s", tripID, typ), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
