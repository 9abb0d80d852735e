package store

import "github.com/herathua/tripplanner-sub000/internal/trip"

// TripsState holds the loaded trip list and the one being viewed or edited.
// CurrentID refers into Items; Current resolves it so the two can never
// disagree.
type TripsState struct {
	Items     []trip.Trip
	CurrentID int64
	// Draft holds the not-yet-saved trip from the creation form; the planning
	// screen refuses to open without one.
	Draft   *trip.Trip
	Loading bool
	Err     string
}

func (t TripsState) clone() TripsState {
	out := t
	out.Items = append([]trip.Trip(nil), t.Items...)
	if t.Draft != nil {
		d := *t.Draft
		out.Draft = &d
	}
	return out
}

// Current returns the selected trip, or nil when none is selected or the
// selection no longer exists.
func (t TripsState) Current() *trip.Trip {
	for i := range t.Items {
		if t.Items[i].ID == t.CurrentID {
			return &t.Items[i]
		}
	}
	return nil
}

type TripsLoading struct{}

func (TripsLoading) apply(s *State) {
	s.Trips.Loading = true
	s.Trips.Err = ""
}

type TripsLoaded struct {
	Items []trip.Trip
}

func (a TripsLoaded) apply(s *State) {
	s.Trips.Items = a.Items
	s.Trips.Loading = false
	s.Trips.Err = ""
}

type TripsFailed struct {
	Err string
}

func (a TripsFailed) apply(s *State) {
	s.Trips.Loading = false
	s.Trips.Err = a.Err
}

// TripDraftSet stashes the creation-form values ahead of the planning screen.
type TripDraftSet struct {
	Draft trip.Trip
}

func (a TripDraftSet) apply(s *State) {
	d := a.Draft
	s.Trips.Draft = &d
}

type TripDraftCleared struct{}

func (TripDraftCleared) apply(s *State) {
	s.Trips.Draft = nil
}

type TripSelected struct {
	ID int64
}

func (a TripSelected) apply(s *State) {
	s.Trips.CurrentID = a.ID
}

// TripUpserted replaces the trip with the same ID or appends it.
type TripUpserted struct {
	Trip trip.Trip
}

func (a TripUpserted) apply(s *State) {
	for i := range s.Trips.Items {
		if s.Trips.Items[i].ID == a.Trip.ID {
			s.Trips.Items[i] = a.Trip
			return
		}
	}
	s.Trips.Items = append(s.Trips.Items, a.Trip)
}

// TripRemoved drops the trip and clears the selection if it pointed there.
type TripRemoved struct {
	ID int64
}

func (a TripRemoved) apply(s *State) {
	items := s.Trips.Items[:0]
	for _, t := range s.Trips.Items {
		if t.ID != a.ID {
			items = append(items, t)
		}
	}
	s.Trips.Items = items
	if s.Trips.CurrentID == a.ID {
		s.Trips.CurrentID = 0
	}
}
