package store

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind selects the toast style.
type NotificationKind string

const (
	NoticeInfo    NotificationKind = "info"
	NoticeSuccess NotificationKind = "success"
	NoticeWarning NotificationKind = "warning"
	NoticeError   NotificationKind = "error"
)

// Notification is one toast. Duration zero means sticky until dismissed.
type Notification struct {
	ID       string
	Kind     NotificationKind
	Message  string
	Duration time.Duration
}

// Modal describes the single open dialog; zero value means none.
type Modal struct {
	Open    bool
	Kind    string
	Payload any
}

type UIState struct {
	Notifications []Notification
	Modal         Modal
	SidebarOpen   bool
	Loading       map[string]bool
}

func newUIState() UIState {
	return UIState{Loading: map[string]bool{}}
}

func (u UIState) clone() UIState {
	out := u
	out.Notifications = append([]Notification(nil), u.Notifications...)
	out.Loading = make(map[string]bool, len(u.Loading))
	for k, v := range u.Loading {
		out.Loading[k] = v
	}
	return out
}

// LoadingAny reports whether any tracked operation is in flight.
func (u UIState) LoadingAny() bool {
	for _, on := range u.Loading {
		if on {
			return true
		}
	}
	return false
}

// NotificationPushed shows a toast. The ID is assigned during dispatch;
// dismissal is scheduled automatically when Duration is positive. Dispatch
// with a pointer to read the assigned ID back.
type NotificationPushed struct {
	Notification Notification
	ID           string
}

func (a *NotificationPushed) apply(s *State) {
	if a.Notification.ID == "" {
		a.Notification.ID = uuid.NewString()
	}
	a.ID = a.Notification.ID
	s.UI.Notifications = append(s.UI.Notifications, a.Notification)
}

func (a *NotificationPushed) follow(st *Store) {
	if a.Notification.Duration <= 0 {
		return
	}
	id := a.Notification.ID
	time.AfterFunc(a.Notification.Duration, func() {
		st.Dispatch(NotificationDismissed{ID: id})
	})
}

type NotificationDismissed struct {
	ID string
}

func (a NotificationDismissed) apply(s *State) {
	items := s.UI.Notifications[:0]
	for _, n := range s.UI.Notifications {
		if n.ID != a.ID {
			items = append(items, n)
		}
	}
	s.UI.Notifications = items
}

type ModalOpened struct {
	Kind    string
	Payload any
}

func (a ModalOpened) apply(s *State) {
	s.UI.Modal = Modal{Open: true, Kind: a.Kind, Payload: a.Payload}
}

type ModalClosed struct{}

func (ModalClosed) apply(s *State) {
	s.UI.Modal = Modal{}
}

type SidebarToggled struct{}

func (SidebarToggled) apply(s *State) {
	s.UI.SidebarOpen = !s.UI.SidebarOpen
}

// LoadingSet flips one named loading flag; cleared flags are removed so the
// map only holds active keys.
type LoadingSet struct {
	Key string
	On  bool
}

func (a LoadingSet) apply(s *State) {
	if s.UI.Loading == nil {
		s.UI.Loading = map[string]bool{}
	}
	if a.On {
		s.UI.Loading[a.Key] = true
		return
	}
	delete(s.UI.Loading, a.Key)
}
