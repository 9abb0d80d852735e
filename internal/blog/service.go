package blog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gosimple/slug"

	"github.com/herathua/tripplanner-sub000/internal/api"
)

// Service wraps the /blog-posts and /public/blog-posts endpoints. Authorized
// operations carry the caller's firebaseUid as a query parameter, which the
// backend checks against the bearer token.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func uidQuery(uid string) url.Values {
	return url.Values{"firebaseUid": {uid}}
}

func pageQuery(page, size int) url.Values {
	return url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
}

func (s *Service) Create(ctx context.Context, uid string, post BlogPost) (BlogPost, error) {
	var out BlogPost
	if err := s.api.Post(ctx, "/blog-posts", uidQuery(uid), post, &out); err != nil {
		return BlogPost{}, err
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, uid string, post BlogPost) (BlogPost, error) {
	var out BlogPost
	if err := s.api.Put(ctx, fmt.Sprintf("/blog-posts/%d", id), uidQuery(uid), post, &out); err != nil {
		return BlogPost{}, err
	}
	return out, nil
}

// Publish transitions a draft to PUBLISHED; the backend assigns the public
// slug and returns the public URL.
func (s *Service) Publish(ctx context.Context, id int64, uid string) (PublishResponse, error) {
	var out PublishResponse
	if err := s.api.Put(ctx, fmt.Sprintf("/blog-posts/%d/publish", id), uidQuery(uid), nil, &out); err != nil {
		return PublishResponse{}, err
	}
	return out, nil
}

// SaveDraft moves a post back to DRAFT.
func (s *Service) SaveDraft(ctx context.Context, id int64, uid string) (BlogPost, error) {
	var out BlogPost
	if err := s.api.Put(ctx, fmt.Sprintf("/blog-posts/%d/draft", id), uidQuery(uid), nil, &out); err != nil {
		return BlogPost{}, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (BlogPost, error) {
	var out BlogPost
	if err := s.api.Get(ctx, fmt.Sprintf("/blog-posts/%d", id), nil, &out); err != nil {
		return BlogPost{}, err
	}
	return out, nil
}

func (s *Service) ListByUser(ctx context.Context, uid string, page, size int) (Page, error) {
	var out Page
	if err := s.api.Get(ctx, "/blog-posts/user/"+url.PathEscape(uid), pageQuery(page, size), &out); err != nil {
		return Page{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64, uid string) error {
	return s.api.Delete(ctx, fmt.Sprintf("/blog-posts/%d", id), uidQuery(uid), nil)
}

// GetBySlug fetches a published post through its public slug.
func (s *Service) GetBySlug(ctx context.Context, publicSlug string) (BlogPost, error) {
	var out BlogPost
	if err := s.api.Get(ctx, "/public/blog-posts/"+url.PathEscape(publicSlug), nil, &out); err != nil {
		return BlogPost{}, err
	}
	return out, nil
}

func (s *Service) ListPublished(ctx context.Context, page, size int) (Page, error) {
	var out Page
	if err := s.api.Get(ctx, "/public/blog-posts", pageQuery(page, size), &out); err != nil {
		return Page{}, err
	}
	return out, nil
}

func (s *Service) SearchPublished(ctx context.Context, query string, page, size int) (Page, error) {
	q := pageQuery(page, size)
	q.Set("query", query)
	var out Page
	if err := s.api.Get(ctx, "/public/blog-posts/search", q, &out); err != nil {
		return Page{}, err
	}
	return out, nil
}

func (s *Service) ListByTag(ctx context.Context, tag string, page, size int) (Page, error) {
	var out Page
	if err := s.api.Get(ctx, "/public/blog-posts/tag/"+url.PathEscape(tag), pageQuery(page, size), &out); err != nil {
		return Page{}, err
	}
	return out, nil
}

// SuggestSlug previews the URL-safe slug the backend will assign when the
// titled post is published.
func SuggestSlug(title string) string {
	return slug.Make(title)
}
