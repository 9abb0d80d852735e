package itinerary

import (
	"testing"
)

func sampleDoc() Document {
	return Document{Days: []Day{
		{
			DayNumber: 1,
			Date:      "2026-09-01",
			Activities: []Activity{
				{ID: "a1", Name: "Temple of the Tooth", Type: TypeSightseeing, Status: StatusPlanned, DayNumber: 1},
			},
		},
	}}
}

func TestParseBlankAndMalformed(t *testing.T) {
	for _, raw := range []string{"", "{}"} {
		doc, err := Parse(raw)
		if err != nil || len(doc.Days) != 0 {
			t.Errorf("Parse(%q) = %+v, %v; want empty plan", raw, doc, err)
		}
	}
	if _, err := Parse("{not json"); err == nil {
		t.Error("malformed input should not parse")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := Parse(sampleDoc().Encode())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Days) != 1 || doc.Days[0].Activities[0].Name != "Temple of the Tooth" {
		t.Fatalf("round trip lost data: %+v", doc)
	}
}

func TestAddActivitySkipsDuplicates(t *testing.T) {
	doc := sampleDoc()
	dup := Activity{ID: "a1", Name: "Duplicate", Type: TypeOther, Status: StatusPlanned, DayNumber: 1}
	if doc.AddActivity(1, "2026-09-01", dup) {
		t.Fatal("duplicate activity id should be skipped")
	}
	if got := len(doc.ActivitiesForDay(1)); got != 1 {
		t.Fatalf("day 1 has %d activities, want 1", got)
	}

	fresh := Activity{ID: "a2", Name: "Royal Botanic Gardens", Type: TypeSightseeing, Status: StatusPlanned, DayNumber: 1}
	if !doc.AddActivity(1, "2026-09-01", fresh) {
		t.Fatal("new activity should be added")
	}
	if got := len(doc.ActivitiesForDay(1)); got != 2 {
		t.Fatalf("day 1 has %d activities, want 2", got)
	}
}

func TestAddActivityCreatesDay(t *testing.T) {
	doc := sampleDoc()
	a := Activity{ID: "b1", Name: "Train to Ella", Type: TypeTransport, Status: StatusPlanned, DayNumber: 2}
	if !doc.AddActivity(2, "2026-09-02", a) {
		t.Fatal("add to a new day should succeed")
	}
	day := doc.day(2)
	if day == nil || day.Date != "2026-09-02" || len(day.Activities) != 1 {
		t.Fatalf("day 2 = %+v", day)
	}
}

func TestRemoveAndUpdateActivity(t *testing.T) {
	doc := sampleDoc()
	updated := Activity{Name: "Temple visit, early", Type: TypeSightseeing, Status: StatusConfirmed, DayNumber: 1}
	if !doc.UpdateActivity(1, "a1", updated) {
		t.Fatal("update should find a1")
	}
	got := doc.ActivitiesForDay(1)[0]
	if got.ID != "a1" || got.Status != StatusConfirmed {
		t.Fatalf("updated activity = %+v, want id kept and status confirmed", got)
	}
	if doc.UpdateActivity(1, "missing", updated) {
		t.Fatal("update of unknown id should report false")
	}

	doc.RemoveActivity(1, "a1")
	if got := len(doc.ActivitiesForDay(1)); got != 0 {
		t.Fatalf("day 1 still has %d activities after removal", got)
	}
	doc.RemoveActivity(9, "a1")
}

func TestAllActivitiesFlattens(t *testing.T) {
	doc := sampleDoc()
	doc.AddActivity(2, "2026-09-02", Activity{ID: "b1", Name: "Train to Ella", Type: TypeTransport, Status: StatusPlanned, DayNumber: 2})
	all := doc.AllActivities()
	if len(all) != 2 || all[0].ID != "a1" || all[1].ID != "b1" {
		t.Fatalf("all = %+v", all)
	}
}
