package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/herathua/tripplanner-sub000/internal/api"
	"github.com/herathua/tripplanner-sub000/internal/user"
)

// Stats is the site-wide overview shown on the admin landing page.
type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"`
	TotalTrips     int `json:"totalTrips"`
	TotalBlogPosts int `json:"totalBlogPosts"`
	PublishedPosts int `json:"publishedPosts"`
}

// Log is one audit trail entry.
type Log struct {
	ID        int64  `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"createdAt"`
}

// Activity summarizes one user's recent actions.
type Activity struct {
	UserID    int64  `json:"userId"`
	Trips     int    `json:"trips"`
	BlogPosts int    `json:"blogPosts"`
	LastSeen  string `json:"lastSeen"`
}

// Dashboard bundles the three admin overview fetches.
type Dashboard struct {
	Stats Stats
	Users []user.User
	Logs  []Log
}

const defaultLogLimit = 50

// Service talks to the admin endpoints. The backend enforces the ADMIN role
// from the bearer token, so every call can fail with a forbidden kind.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	if err := s.api.Get(ctx, "/admin/stats", nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

func (s *Service) Users(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := s.api.Get(ctx, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int64, role user.Role) (user.User, error) {
	var out user.User
	body := map[string]user.Role{"role": role}
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/users/%d/role", id), nil, body, &out); err != nil {
		return user.User{}, err
	}
	return out, nil
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) (user.User, error) {
	var out user.User
	body := map[string]bool{"active": active}
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/users/%d/status", id), nil, body, &out); err != nil {
		return user.User{}, err
	}
	return out, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

func (s *Service) Logs(ctx context.Context, limit int) ([]Log, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	var out []Log
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := s.api.Get(ctx, "/admin/logs", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) UserActivity(ctx context.Context, id int64) (Activity, error) {
	var out Activity
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/users/%d/activity", id), nil, &out); err != nil {
		return Activity{}, err
	}
	return out, nil
}

// LoadDashboard fetches stats, the user list and recent logs concurrently.
// Any failure cancels the remaining fetches and is returned as-is.
func (s *Service) LoadDashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.Stats(ctx)
		d.Stats = st
		return err
	})
	g.Go(func() error {
		us, err := s.Users(ctx)
		d.Users = us
		return err
	})
	g.Go(func() error {
		ls, err := s.Logs(ctx, defaultLogLimit)
		d.Logs = ls
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
