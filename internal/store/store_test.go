package store

import (
	"testing"
	"time"

	"github.com/herathua/tripplanner-sub000/internal/auth"
	"github.com/herathua/tripplanner-sub000/internal/trip"
)

func TestSnapshotsAreIsolated(t *testing.T) {
	st := New()
	st.Dispatch(TripsLoaded{Items: []trip.Trip{{ID: 1, Title: "A"}}})

	snap := st.State()
	snap.Trips.Items[0].Title = "mutated"

	if st.State().Trips.Items[0].Title != "A" {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	st := New()
	ch := st.Subscribe()
	defer st.Unsubscribe(ch)

	st.Dispatch(SidebarToggled{})
	select {
	case snap := <-ch:
		if !snap.UI.SidebarOpen {
			t.Fatal("snapshot missing the dispatched change")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	st := New()
	ch := st.Subscribe()
	defer st.Unsubscribe(ch)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			st.Dispatch(SidebarToggled{})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked on a full subscriber")
	}
}

func TestAuthDerivedState(t *testing.T) {
	st := New()
	if st.State().Auth.Authenticated() {
		t.Fatal("fresh store should not be authenticated")
	}
	if st.State().Auth.Initialized {
		t.Fatal("fresh store should not be initialized")
	}

	st.Dispatch(AuthRequestStarted{Op: OpSignIn})
	if s := st.State().Auth; s.Status != AuthPending || s.Op != OpSignIn {
		t.Fatalf("after start: %+v", s)
	}

	st.Dispatch(AuthResolved{User: &auth.User{UID: "uid-1"}})
	s := st.State()
	if !s.Auth.Authenticated() || !s.Auth.Initialized {
		t.Fatalf("after resolve: %+v", s.Auth)
	}

	st.Dispatch(AuthFailedWith{Err: "wrong password"})
	s = st.State()
	if !s.Auth.Authenticated() {
		t.Fatal("a failed request must not drop the current identity")
	}
	if s.Auth.Err != "wrong password" {
		t.Fatalf("err = %q", s.Auth.Err)
	}

	st.Dispatch(SignedOut{})
	if st.State().Auth.Authenticated() {
		t.Fatal("still authenticated after sign-out")
	}
}

func TestCurrentTripTracksItems(t *testing.T) {
	st := New()
	st.Dispatch(TripsLoaded{Items: []trip.Trip{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}})
	st.Dispatch(TripSelected{ID: 2})

	if cur := st.State().Trips.Current(); cur == nil || cur.Title != "B" {
		t.Fatalf("current = %+v, want trip 2", cur)
	}

	st.Dispatch(TripUpserted{Trip: trip.Trip{ID: 2, Title: "B2"}})
	if cur := st.State().Trips.Current(); cur == nil || cur.Title != "B2" {
		t.Fatal("current did not follow the upsert")
	}

	st.Dispatch(TripRemoved{ID: 2})
	s := st.State()
	if s.Trips.Current() != nil {
		t.Fatal("current should clear when the selected trip is removed")
	}
	if len(s.Trips.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(s.Trips.Items))
	}
}

func TestHotelFilters(t *testing.T) {
	st := New()
	added := &HotelAdded{Hotel: Hotel{Name: "Hilltop Lodge", Location: "Ella", Price: 80, Stars: 3}}
	st.Dispatch(added)
	if added.ID == "" {
		t.Fatal("expected a generated hotel id")
	}
	st.Dispatch(&HotelAdded{Hotel: Hotel{Name: "Beach Resort", Location: "Galle", Price: 220, Stars: 5}})

	st.Dispatch(HotelFilterChanged{Filter: HotelFilter{MaxPrice: 100}})
	if vis := st.State().Hotels.Visible(); len(vis) != 1 || vis[0].Name != "Hilltop Lodge" {
		t.Fatalf("visible = %+v, want only the lodge", vis)
	}

	st.Dispatch(HotelFilterChanged{Filter: HotelFilter{Location: "galle", MinStars: 4}})
	if vis := st.State().Hotels.Visible(); len(vis) != 1 || vis[0].Name != "Beach Resort" {
		t.Fatalf("visible = %+v, want only the resort", vis)
	}

	st.Dispatch(HotelSelected{ID: added.ID})
	if sel := st.State().Hotels.Selected(); sel == nil || sel.Name != "Hilltop Lodge" {
		t.Fatalf("selected = %+v", sel)
	}

	st.Dispatch(HotelRemoved{ID: added.ID})
	s := st.State()
	if got := len(s.Hotels.Items); got != 1 {
		t.Fatalf("items = %d, want 1 after removal", got)
	}
	if s.Hotels.Selected() != nil {
		t.Fatal("selection should clear when the hotel is removed")
	}
}

func TestNotificationAutoDismiss(t *testing.T) {
	st := New()
	pushed := &NotificationPushed{Notification: Notification{
		Kind:     NoticeSuccess,
		Message:  "trip saved",
		Duration: 20 * time.Millisecond,
	}}
	st.Dispatch(pushed)
	if pushed.ID == "" {
		t.Fatal("expected a generated notification id")
	}
	if got := len(st.State().UI.Notifications); got != 1 {
		t.Fatalf("notifications = %d, want 1", got)
	}

	deadline := time.Now().Add(time.Second)
	for len(st.State().UI.Notifications) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("notification never auto-dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStickyNotificationStays(t *testing.T) {
	st := New()
	pushed := &NotificationPushed{Notification: Notification{Kind: NoticeError, Message: "save failed"}}
	st.Dispatch(pushed)

	time.Sleep(50 * time.Millisecond)
	if got := len(st.State().UI.Notifications); got != 1 {
		t.Fatalf("sticky notification vanished, have %d", got)
	}

	st.Dispatch(NotificationDismissed{ID: pushed.ID})
	if got := len(st.State().UI.Notifications); got != 0 {
		t.Fatalf("notifications = %d after manual dismiss", got)
	}
}

func TestLoadingFlags(t *testing.T) {
	st := New()
	st.Dispatch(LoadingSet{Key: "trips", On: true})
	st.Dispatch(LoadingSet{Key: "blog", On: true})
	if !st.State().UI.LoadingAny() {
		t.Fatal("expected loading")
	}
	st.Dispatch(LoadingSet{Key: "trips", On: false})
	st.Dispatch(LoadingSet{Key: "blog", On: false})
	if st.State().UI.LoadingAny() {
		t.Fatal("expected idle")
	}
}

func TestModalState(t *testing.T) {
	st := New()
	st.Dispatch(ModalOpened{Kind: "confirm-delete", Payload: int64(7)})
	m := st.State().UI.Modal
	if !m.Open || m.Kind != "confirm-delete" || m.Payload != int64(7) {
		t.Fatalf("modal = %+v", m)
	}
	st.Dispatch(ModalClosed{})
	if st.State().UI.Modal.Open {
		t.Fatal("modal still open after close")
	}
}

func TestTripDraftGate(t *testing.T) {
	st := New()
	if st.State().Trips.Draft != nil {
		t.Fatal("fresh store should have no draft")
	}
	st.Dispatch(TripDraftSet{Draft: trip.Trip{Title: "Island loop", Destination: "Sri Lanka"}})
	if d := st.State().Trips.Draft; d == nil || d.Title != "Island loop" {
		t.Fatalf("draft = %+v", d)
	}
	st.Dispatch(TripDraftCleared{})
	if st.State().Trips.Draft != nil {
		t.Fatal("draft survived clear")
	}
}
