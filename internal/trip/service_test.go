package trip

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

func serviceFor(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(api.NewClient(srv.URL, time.Second, zerolog.Nop()))
}

func validTrip() Trip {
	return Trip{
		Title:       "Island loop",
		Destination: "Sri Lanka",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-14",
		Budget:      1500,
	}
}

func TestValidate(t *testing.T) {
	if err := validTrip().Validate(); err != nil {
		t.Fatalf("valid trip rejected: %v", err)
	}

	tr := validTrip()
	tr.Title = ""
	if err := tr.Validate(); err != ErrTitleRequired {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	tr = validTrip()
	tr.EndDate = "2026-08-30"
	if err := tr.Validate(); err != ErrDatesInverted {
		t.Fatalf("expected ErrDatesInverted, got %v", err)
	}

	tr = validTrip()
	tr.Budget = -1
	if err := tr.Validate(); err != ErrNegativeBudget {
		t.Fatalf("expected ErrNegativeBudget, got %v", err)
	}

	tr = validTrip()
	tr.StartDate = "01-09-2026"
	if tr.Validate() == nil {
		t.Fatalf("expected bad-date error")
	}
}

func TestCreateReturnsID(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/trips" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in Trip
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Destination != "Sri Lanka" {
			t.Fatalf("unexpected body: %+v", in)
		}
		_, _ = w.Write([]byte(`42`))
	})

	id, err := svc.Create(context.Background(), validTrip())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestCreateValidatesBeforeSending(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no request expected for invalid trip")
	})
	tr := validTrip()
	tr.EndDate = "2026-01-01"
	if _, err := svc.Create(context.Background(), tr); !errors.Is(err, ErrDatesInverted) {
		t.Fatalf("expected ErrDatesInverted, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/trips":
			_, _ = w.Write([]byte(`[{"id":1,"title":"A","destination":"X","startDate":"2026-01-01","endDate":"2026-01-05","budget":100,"status":"planning"}]`))
		case r.Method == http.MethodDelete && r.URL.Path == "/trips/1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	trips, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 1 || trips[0].Status != StatusPlanning {
		t.Fatalf("unexpected trips: %+v", trips)
	}
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
