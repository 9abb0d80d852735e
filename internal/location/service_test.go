package location

import (
	"context"
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

func TestSearch(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/locations/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("query") != "galle" || q.Get("languageCode") != "en" || q.Get("limit") != "3" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[
			{"dest_id":"900040018","name":"Galle","label":"Galle, Southern Province, Sri Lanka",
			 "dest_type":"city","cc1":"lk","latitude":"6.0535","longitude":"80.221",
			 "image_url":"https://img.example/galle.jpg","hotels":412},
			{"dest_id":"1234","name":"Galle Fort","label":"Galle Fort, Galle, Sri Lanka",
			 "dest_type":"landmark","cc1":"lk","latitude":6.0267,"longitude":80.2167}
		]`))
	})

	got, err := svc.Search(context.Background(), "  galle ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	first := got[0]
	if first.ID != "900040018" || first.Name != "Galle" || first.Type != "city" {
		t.Errorf("first = %+v", first)
	}
	if first.CountryCode != "LK" {
		t.Errorf("country = %q, want upper-cased LK", first.CountryCode)
	}
	// String coordinates parse, numeric ones pass through.
	if first.Lat != 6.0535 || got[1].Lng != 80.2167 {
		t.Errorf("coords = %v / %v", first.Lat, got[1].Lng)
	}
	if first.HotelCount != 412 {
		t.Errorf("hotels = %d", first.HotelCount)
	}
}

func TestSearchBlankQuerySkipsNetwork(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a blank query")
	})
	got, err := svc.Search(context.Background(), "   ")
	if err != nil || got != nil {
		t.Fatalf("blank query = %v, %v; want nil, nil", got, err)
	}
}

func TestSearchPropagatesErrors(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	})
	_, err := svc.Search(context.Background(), "kandy")
	if err == nil {
		t.Fatal("expected an error")
	}
	if api.KindOf(err) != api.KindRateLimited {
		t.Fatalf("kind = %v, want rate-limited", api.KindOf(err))
	}
}
