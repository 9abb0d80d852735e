package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

const dateLayout = "2006-01-02"

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrTitleRequired  = errors.New("trip: title and destination are required")
	ErrDatesInverted  = errors.New("trip: end date is before start date")
	ErrNegativeBudget = errors.New("trip: budget must not be negative")
)

// Trip is the backend record. Dates travel as YYYY-MM-DD strings.
type Trip struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Status      Status  `json:"status,omitempty"`
	DateCreated string  `json:"dateCreated,omitempty"`
	LastUpdated string  `json:"lastUpdated,omitempty"`
}

// Validate runs the client-side checks performed before any trip write.
func (t Trip) Validate() error {
	if t.Title == "" || t.Destination == "" {
		return ErrTitleRequired
	}
	if t.Budget < 0 {
		return ErrNegativeBudget
	}
	start, err := time.Parse(dateLayout, t.StartDate)
	if err != nil {
		return fmt.Errorf("trip: bad start date %q: %w", t.StartDate, err)
	}
	end, err := time.Parse(dateLayout, t.EndDate)
	if err != nil {
		return fmt.Errorf("trip: bad end date %q: %w", t.EndDate, err)
	}
	if end.Before(start) {
		return ErrDatesInverted
	}
	return nil
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) List(ctx context.Context) ([]Trip, error) {
	var out []Trip
	if err := s.api.Get(ctx, "/trips", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Trip, error) {
	var out Trip
	if err := s.api.Get(ctx, fmt.Sprintf("/trips/%d", id), nil, &out); err != nil {
		return Trip{}, err
	}
	return out, nil
}

// Create submits a new trip and returns the id the backend assigned.
func (s *Service) Create(ctx context.Context, t Trip) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var id int64
	if err := s.api.Post(ctx, "/trips", nil, t, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, t Trip) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.api.Put(ctx, fmt.Sprintf("/trips/%d", id), nil, t, nil)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/trips/%d", id), nil, nil)
}
