package store

import "github.com/herathua/tripplanner-sub000/internal/auth"

// AuthStatus tracks the lifecycle of the most recent auth request.
type AuthStatus string

const (
	AuthIdle    AuthStatus = "idle"
	AuthPending AuthStatus = "pending"
	AuthSettled AuthStatus = "settled"
	AuthFailed  AuthStatus = "failed"
)

// AuthState mirrors the current session. Initialized stays false until the
// first auth resolution so the UI can hold a splash screen instead of
// flashing the signed-out view.
type AuthState struct {
	User        *auth.User
	Status      AuthStatus
	Op          AuthOp
	Err         string
	Initialized bool
}

// Authenticated is derived, never stored, so it cannot drift from User.
func (a AuthState) Authenticated() bool {
	return a.User != nil
}

// AuthOp names the request a pending/settled/failed transition belongs to.
type AuthOp string

const (
	OpSignIn    AuthOp = "signIn"
	OpSignUp    AuthOp = "signUp"
	OpGoogle    AuthOp = "googleSignIn"
	OpAnonymous AuthOp = "anonymousSignIn"
	OpReload    AuthOp = "reload"
)

// AuthRequestStarted marks a sign-in, sign-up or reload in flight.
type AuthRequestStarted struct {
	Op AuthOp
}

func (a AuthRequestStarted) apply(s *State) {
	s.Auth.Status = AuthPending
	s.Auth.Op = a.Op
	s.Auth.Err = ""
}

// AuthResolved records the identity after a successful auth request or an
// auth-state change from the session (nil on sign-out).
type AuthResolved struct {
	Op   AuthOp
	User *auth.User
}

func (a AuthResolved) apply(s *State) {
	s.Auth.User = a.User
	s.Auth.Status = AuthSettled
	s.Auth.Op = a.Op
	s.Auth.Err = ""
	s.Auth.Initialized = true
}

// AuthFailedWith records a failed auth request. The previous identity is
// kept: a failed password change does not sign the user out.
type AuthFailedWith struct {
	Op  AuthOp
	Err string
}

func (a AuthFailedWith) apply(s *State) {
	s.Auth.Status = AuthFailed
	s.Auth.Op = a.Op
	s.Auth.Err = a.Err
	s.Auth.Initialized = true
}

// SignedOut clears the identity and any stale per-user state.
type SignedOut struct{}

func (SignedOut) apply(s *State) {
	s.Auth = AuthState{Status: AuthSettled, Initialized: true}
	s.Trips = TripsState{}
}
