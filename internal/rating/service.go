package rating

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// ErrOutOfRange rejects ratings outside 1-5 before any network call.
var ErrOutOfRange = errors.New("rating: value must be an integer between 1 and 5")

// Rating is one (post, user) star rating. The backend keeps at most one per
// pair; resubmitting updates in place.
type Rating struct {
	ID         int64      `json:"id,omitempty"`
	BlogPostID int64      `json:"blogPostId"`
	UserID     string     `json:"userId"`
	Rating     int        `json:"rating"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// Stats are server-computed aggregates; the client never derives them from
// raw ratings.
type Stats struct {
	AverageRating float64     `json:"averageRating"`
	RatingCount   int64       `json:"ratingCount"`
	Distribution  map[int]int `json:"distribution,omitempty"`
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Submit stores or updates the caller's rating for a post. Business rules
// (own post, rate limits) are enforced server-side and surface as api.Error
// kinds.
func (s *Service) Submit(ctx context.Context, postID int64, uid string, value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrOutOfRange
	}
	q := url.Values{
		"firebaseUid": {uid},
		"rating":      {strconv.Itoa(value)},
	}
	var out Rating
	if err := s.api.Post(ctx, fmt.Sprintf("/blog-ratings/%d", postID), q, nil, &out); err != nil {
		return Rating{}, err
	}
	return out, nil
}

// UserRating fetches the caller's existing rating. found is false only when
// the backend reports the rating does not exist; transport and server
// failures are returned as errors instead of masquerading as "no rating yet".
func (s *Service) UserRating(ctx context.Context, postID int64, uid string) (Rating, bool, error) {
	var out Rating
	err := s.api.Get(ctx, fmt.Sprintf("/blog-ratings/%d/user/%s", postID, url.PathEscape(uid)), nil, &out)
	if err != nil {
		if api.IsNotFound(err) {
			return Rating{}, false, nil
		}
		return Rating{}, false, err
	}
	return out, true, nil
}

func (s *Service) All(ctx context.Context, postID int64) ([]Rating, error) {
	var out []Rating
	if err := s.api.Get(ctx, fmt.Sprintf("/blog-ratings/%d/all", postID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Average(ctx context.Context, postID int64) (float64, error) {
	var out struct {
		AverageRating float64 `json:"averageRating"`
	}
	if err := s.api.Get(ctx, fmt.Sprintf("/blog-ratings/%d/average", postID), nil, &out); err != nil {
		return 0, err
	}
	return out.AverageRating, nil
}

func (s *Service) Count(ctx context.Context, postID int64) (int64, error) {
	var out struct {
		RatingCount int64 `json:"ratingCount"`
	}
	if err := s.api.Get(ctx, fmt.Sprintf("/blog-ratings/%d/count", postID), nil, &out); err != nil {
		return 0, err
	}
	return out.RatingCount, nil
}

func (s *Service) Stats(ctx context.Context, postID int64) (Stats, error) {
	var out Stats
	if err := s.api.Get(ctx, fmt.Sprintf("/blog-ratings/%d/stats", postID), nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

func (s *Service) HasRated(ctx context.Context, postID int64, uid string) (bool, error) {
	var out struct {
		HasRated bool `json:"hasRated"`
	}
	err := s.api.Get(ctx, fmt.Sprintf("/blog-ratings/%d/user/%s/exists", postID, url.PathEscape(uid)), nil, &out)
	if err != nil {
		if api.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return out.HasRated, nil
}

func (s *Service) Delete(ctx context.Context, postID int64, uid string) error {
	return s.api.Delete(ctx, fmt.Sprintf("/blog-ratings/%d/user/%s", postID, url.PathEscape(uid)), nil, nil)
}

// Percentages converts a star distribution into display percentages.
// This is the only aggregate math done client-side.
func Percentages(distribution map[int]int) map[int]float64 {
	total := 0
	for _, n := range distribution {
		total += n
	}
	out := make(map[int]float64, len(distribution))
	if total == 0 {
		return out
	}
	for star, n := range distribution {
		out[star] = float64(n) * 100 / float64(total)
	}
	return out
}
