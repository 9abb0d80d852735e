package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// Role is a backend-assigned access level.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// User is the backend account record tied to a Firebase identity.
type User struct {
	ID            int64  `json:"id"`
	FirebaseUID   string `json:"firebaseUid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoUrl"`
	Role          Role   `json:"role"`
	Active        bool   `json:"active"`
	Currency      string `json:"currency,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// Profile carries the editable subset of an account.
type Profile struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// Stats summarizes a user's content.
type Stats struct {
	Trips      int `json:"trips"`
	BlogPosts  int `json:"blogPosts"`
	Published  int `json:"published"`
	Ratings    int `json:"ratings"`
	PlacesSeen int `json:"placesSeen"`
}

// Service talks to the user endpoints. Mutating calls identify the caller by
// firebaseUid, which the backend checks against the bearer token.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func uidQuery(uid string) url.Values {
	return url.Values{"firebaseUid": {uid}}
}

// Sync upserts the backend account after a provider sign-in or profile
// refresh, so the two stores never drift.
func (s *Service) Sync(ctx context.Context, u User) (User, error) {
	var out User
	if err := s.api.Post(ctx, "/users/sync", nil, u, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	var out User
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// ByFirebaseUID reports found=false when the account has not been synced yet,
// so callers can trigger Sync instead of treating it as a failure.
func (s *Service) ByFirebaseUID(ctx context.Context, uid string) (User, bool, error) {
	var out User
	err := s.api.Get(ctx, fmt.Sprintf("/users/firebase/%s", url.PathEscape(uid)), nil, &out)
	if api.IsNotFound(err) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return out, true, nil
}

func (s *Service) ByEmail(ctx context.Context, email string) (User, bool, error) {
	var out User
	err := s.api.Get(ctx, "/users/email", url.Values{"email": {email}}, &out)
	if api.IsNotFound(err) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return out, true, nil
}

func (s *Service) UpdateProfile(ctx context.Context, uid string, p Profile) (User, error) {
	var out User
	if err := s.api.Put(ctx, "/users/profile", uidQuery(uid), p, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// UpdatePassword records a password change on the backend. The actual
// credential change happens at the identity provider first.
func (s *Service) UpdatePassword(ctx context.Context, uid string) error {
	return s.api.Post(ctx, "/users/password/update", uidQuery(uid), nil, nil)
}

func (s *Service) Update(ctx context.Context, id int64, u User) (User, error) {
	var out User
	if err := s.api.Put(ctx, fmt.Sprintf("/users/%d", id), nil, u, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (s *Service) Stats(ctx context.Context, uid string) (Stats, error) {
	var out Stats
	if err := s.api.Get(ctx, "/users/stats", uidQuery(uid), &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

// ExportData returns the user's full data bundle as raw JSON for download.
func (s *Service) ExportData(ctx context.Context, uid string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Get(ctx, "/users/export-data", uidQuery(uid), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAccount removes the backend account and all its content. The caller
// is expected to delete the provider account afterwards.
func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	return s.api.Delete(ctx, "/users/account", uidQuery(uid), nil)
}

// UpdateBlogPostStatus flips one of the user's posts between draft and
// published from the profile page.
func (s *Service) UpdateBlogPostStatus(ctx context.Context, uid string, postID int64, status string) error {
	body := map[string]string{"status": status}
	return s.api.Patch(ctx, fmt.Sprintf("/users/blog-posts/%d/status", postID), uidQuery(uid), body, nil)
}
