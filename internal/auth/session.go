package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshSkew is how close to expiry an ID token may get before Token
// refreshes it instead of handing it out.
const refreshSkew = time.Minute

var ErrNotSignedIn = errors.New("auth: not signed in")

// Session owns the current identity and its token material. It is the
// client-side analogue of the provider SDK's auth-state handle: sign-in
// methods replace the identity, subscribers hear about every change, and
// Token keeps a fresh bearer credential available for API calls.
type Session struct {
	client *Client

	mu    sync.RWMutex
	user  *User
	creds Credentials
	subs  map[chan *User]struct{}
}

func NewSession(client *Client) *Session {
	return &Session{
		client: client,
		subs:   map[chan *User]struct{}{},
	}
}

// Subscribe returns a channel that receives the identity after every
// auth-state change (nil on sign-out). Slow subscribers miss updates rather
// than blocking the session.
func (s *Session) Subscribe() chan *User {
	ch := make(chan *User, 8)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Session) Unsubscribe(ch chan *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

func (s *Session) SignIn(ctx context.Context, email, password string) (*User, error) {
	creds, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, creds)
}

func (s *Session) SignUp(ctx context.Context, email, password string) (*User, error) {
	creds, err := s.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, creds)
}

func (s *Session) SignInAnonymously(ctx context.Context) (*User, error) {
	creds, err := s.client.SignInAnonymously(ctx)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, creds)
}

func (s *Session) SignInWithGoogle(ctx context.Context, googleIDToken string) (*User, error) {
	creds, err := s.client.SignInWithGoogleIDToken(ctx, googleIDToken)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, creds)
}

func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.creds = Credentials{}
	s.mu.Unlock()
	s.broadcast(nil)
}

// User returns the current identity, or nil when signed out.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Token returns a non-expired ID token, refreshing through the provider when
// the current one is inside the expiry skew. It satisfies api.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	creds := s.creds
	signedIn := s.user != nil
	s.mu.RUnlock()

	if !signedIn {
		return "", ErrNotSignedIn
	}
	if time.Until(creds.ExpiresAt) > refreshSkew {
		return creds.IDToken, nil
	}

	fresh, err := s.client.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	// Keep whatever landed while we were refreshing if it is newer.
	if s.creds.ExpiresAt.Before(fresh.ExpiresAt) {
		s.creds = fresh
	}
	creds = s.creds
	s.mu.Unlock()
	return creds.IDToken, nil
}

// ChangePassword re-authenticates with the current password and then sets
// the new one, adopting the credentials the update hands back. Providers
// require a recent sign-in for password changes, so the re-auth is part of
// the operation rather than a precondition on the caller.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	s.mu.RLock()
	var email string
	if s.user != nil {
		email = s.user.Email
	}
	s.mu.RUnlock()
	if email == "" {
		return ErrNotSignedIn
	}

	creds, err := s.client.SignIn(ctx, email, current)
	if err != nil {
		return err
	}
	updated, err := s.client.ChangePassword(ctx, creds.IDToken, next)
	if err != nil {
		return err
	}
	if _, err := s.adopt(ctx, updated); err != nil {
		return err
	}
	return nil
}

// Reload re-fetches the profile behind the current token, picking up changes
// such as a completed email verification.
func (s *Session) Reload(ctx context.Context) (*User, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.client.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.broadcast(&user)
	u := user
	return &u, nil
}

func (s *Session) adopt(ctx context.Context, creds Credentials) (*User, error) {
	if creds.ExpiresAt.IsZero() {
		if exp, err := tokenExpiry(creds.IDToken); err == nil {
			creds.ExpiresAt = exp
		}
	}
	user, err := s.client.Lookup(ctx, creds.IDToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = &user
	s.creds = creds
	s.mu.Unlock()

	s.broadcast(&user)
	u := user
	return &u, nil
}

func (s *Session) broadcast(user *User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- user:
		default:
		}
	}
}

// tokenExpiry reads the exp claim from an ID token without verifying the
// signature; the backend is the party that verifies tokens.
func tokenExpiry(idToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("auth: token has no expiry")
	}
	return exp.Time, nil
}
