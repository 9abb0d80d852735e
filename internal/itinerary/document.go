// Package itinerary manages the day-by-day plan attached to a trip. The plan
// travels inside the trip record as a serialized document; activities can
// also exist as standalone backend records once a trip is saved.
package itinerary

import "encoding/json"

// Type classifies an activity.
type Type string

const (
	TypeSightseeing   Type = "SIGHTSEEING"
	TypeRestaurant    Type = "RESTAURANT"
	TypeHotel         Type = "HOTEL"
	TypeTransport     Type = "TRANSPORT"
	TypeShopping      Type = "SHOPPING"
	TypeEntertainment Type = "ENTERTAINMENT"
	TypeOther         Type = "OTHER"
)

// Status tracks an activity through planning.
type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Activity is one scheduled item inside a day. IDs are client-generated
// strings while the plan only lives inside the trip document.
type Activity struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	StartTime     string  `json:"startTime,omitempty"`
	EndTime       string  `json:"endTime,omitempty"`
	Cost          float64 `json:"cost,omitempty"`
	DurationHours float64 `json:"durationHours,omitempty"`
	Type          Type    `json:"type"`
	Status        Status  `json:"status"`
	DayNumber     int     `json:"dayNumber"`
	PlaceID       int64   `json:"placeId,omitempty"`
}

// Day groups the activities planned for one trip day.
type Day struct {
	DayNumber  int        `json:"dayNumber"`
	Date       string     `json:"date"`
	Notes      string     `json:"notes,omitempty"`
	Activities []Activity `json:"activities"`
}

// Document is the whole serialized plan.
type Document struct {
	Days []Day `json:"days"`
}

// Parse decodes a stored plan. Blank input is an empty plan, not an error;
// malformed input is.
func Parse(raw string) (Document, error) {
	if raw == "" || raw == "{}" {
		return Document{}, nil
	}
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Encode serializes the plan for storage inside the trip record.
func (d Document) Encode() string {
	raw, err := json.Marshal(d)
	if err != nil {
		return `{"days":[]}`
	}
	return string(raw)
}

func (d *Document) day(dayNumber int) *Day {
	for i := range d.Days {
		if d.Days[i].DayNumber == dayNumber {
			return &d.Days[i]
		}
	}
	return nil
}

// AddActivity appends an activity to the given day, creating the day with the
// given date when it does not exist yet. An activity whose ID is already
// present on that day is skipped; the return reports whether it was added.
func (d *Document) AddActivity(dayNumber int, date string, a Activity) bool {
	day := d.day(dayNumber)
	if day == nil {
		d.Days = append(d.Days, Day{
			DayNumber:  dayNumber,
			Date:       date,
			Activities: []Activity{a},
		})
		return true
	}
	for _, existing := range day.Activities {
		if existing.ID != "" && existing.ID == a.ID {
			return false
		}
	}
	day.Activities = append(day.Activities, a)
	return true
}

// RemoveActivity drops the activity with the given ID from the day; unknown
// days and IDs are no-ops.
func (d *Document) RemoveActivity(dayNumber int, activityID string) {
	day := d.day(dayNumber)
	if day == nil {
		return
	}
	kept := day.Activities[:0]
	for _, a := range day.Activities {
		if a.ID != activityID {
			kept = append(kept, a)
		}
	}
	day.Activities = kept
}

// UpdateActivity replaces the activity with the given ID in place, keeping
// its ID. Reports whether a matching activity was found.
func (d *Document) UpdateActivity(dayNumber int, activityID string, a Activity) bool {
	day := d.day(dayNumber)
	if day == nil {
		return false
	}
	for i := range day.Activities {
		if day.Activities[i].ID == activityID {
			a.ID = activityID
			day.Activities[i] = a
			return true
		}
	}
	return false
}

// ActivitiesForDay returns the day's activities, nil for an unknown day.
func (d Document) ActivitiesForDay(dayNumber int) []Activity {
	for _, day := range d.Days {
		if day.DayNumber == dayNumber {
			return day.Activities
		}
	}
	return nil
}

// AllActivities flattens every day in order.
func (d Document) AllActivities() []Activity {
	var all []Activity
	for _, day := range d.Days {
		all = append(all, day.Activities...)
	}
	return all
}
