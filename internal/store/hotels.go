package store

import (
	"strings"

	"github.com/google/uuid"
)

// Hotel is a locally tracked accommodation option attached to the plan. It
// never leaves the client, so IDs are generated here.
type Hotel struct {
	ID       string
	TripID   int64
	Name     string
	Location string
	Price    float64
	Stars    int
	Notes    string
}

// HotelFilter narrows the visible hotel list. Zero values mean "no filter".
type HotelFilter struct {
	Location string
	MaxPrice float64
	MinStars int
}

type HotelsState struct {
	Items      []Hotel
	SelectedID string
	Filter     HotelFilter
}

func newHotelsState() HotelsState {
	return HotelsState{}
}

func (h HotelsState) clone() HotelsState {
	out := h
	out.Items = append([]Hotel(nil), h.Items...)
	return out
}

// Selected resolves the selection against the item list, nil when it no
// longer exists.
func (h HotelsState) Selected() *Hotel {
	for i := range h.Items {
		if h.Items[i].ID == h.SelectedID {
			return &h.Items[i]
		}
	}
	return nil
}

// Visible applies the filter to the item list.
func (h HotelsState) Visible() []Hotel {
	var out []Hotel
	for _, hotel := range h.Items {
		if h.Filter.Location != "" &&
			!strings.Contains(strings.ToLower(hotel.Location), strings.ToLower(h.Filter.Location)) {
			continue
		}
		if h.Filter.MaxPrice > 0 && hotel.Price > h.Filter.MaxPrice {
			continue
		}
		if h.Filter.MinStars > 0 && hotel.Stars < h.Filter.MinStars {
			continue
		}
		out = append(out, hotel)
	}
	return out
}

// HotelAdded inserts a hotel, generating an ID when none is set. Dispatch
// with a pointer to read the assigned ID back.
type HotelAdded struct {
	Hotel Hotel
	ID    string
}

func (a *HotelAdded) apply(s *State) {
	if a.Hotel.ID == "" {
		a.Hotel.ID = uuid.NewString()
	}
	a.ID = a.Hotel.ID
	s.Hotels.Items = append(s.Hotels.Items, a.Hotel)
}

// HotelUpdated replaces the hotel with the same ID; unknown IDs are ignored.
type HotelUpdated struct {
	Hotel Hotel
}

func (a HotelUpdated) apply(s *State) {
	for i := range s.Hotels.Items {
		if s.Hotels.Items[i].ID == a.Hotel.ID {
			s.Hotels.Items[i] = a.Hotel
			return
		}
	}
}

type HotelSelected struct {
	ID string
}

func (a HotelSelected) apply(s *State) {
	s.Hotels.SelectedID = a.ID
}

type HotelRemoved struct {
	ID string
}

func (a HotelRemoved) apply(s *State) {
	items := s.Hotels.Items[:0]
	for _, h := range s.Hotels.Items {
		if h.ID != a.ID {
			items = append(items, h)
		}
	}
	s.Hotels.Items = items
	if s.Hotels.SelectedID == a.ID {
		s.Hotels.SelectedID = ""
	}
}

type HotelFilterChanged struct {
	Filter HotelFilter
}

func (a HotelFilterChanged) apply(s *State) {
	s.Hotels.Filter = a.Filter
}
