package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://firebasestorage.googleapis.com/v0"

	// maxUploadBytes caps profile photo uploads at 5 MiB.
	maxUploadBytes = 5 << 20
)

var (
	ErrTooLarge           = errors.New("storage: file exceeds the 5 MiB upload limit")
	ErrUnsupportedContent = errors.New("storage: unsupported content type")
)

var allowedContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// TokenSource mirrors api.TokenSource; uploads are authorized with the
// caller's Firebase ID token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UploadResult describes a stored object and the public URL persisted into
// the backend profile.
type UploadResult struct {
	Object      string
	DownloadURL string
}

// Service uploads profile photos straight into the Firebase Storage bucket,
// bypassing the backend, the way the original client does.
type Service struct {
	bucket  string
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithBaseURL points the service at a different storage endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = strings.TrimRight(u, "/") }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(bucket string, timeout time.Duration, tokens TokenSource, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		bucket:  bucket,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UploadProfilePhoto stores the image under
// profile-photos/profile-{uid}-{unixms}.{ext} and returns the public
// download URL.
func (s *Service) UploadProfilePhoto(ctx context.Context, uid, contentType string, r io.Reader) (UploadResult, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return UploadResult{}, ErrUnsupportedContent
	}

	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return UploadResult{}, err
	}
	if len(data) > maxUploadBytes {
		return UploadResult{}, ErrTooLarge
	}

	object := fmt.Sprintf("profile-photos/profile-%s-%d.%s", uid, s.now().UnixMilli(), ext)
	target := fmt.Sprintf("%s/b/%s/o?uploadType=media&name=%s", s.baseURL, url.PathEscape(s.bucket), url.QueryEscape(object))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", contentType)
	if err := s.authorize(ctx, req); err != nil {
		return UploadResult{}, err
	}

	res, err := s.http.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return UploadResult{}, fmt.Errorf("storage: upload failed (%d): %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var meta struct {
		Name           string `json:"name"`
		DownloadTokens string `json:"downloadTokens"`
	}
	if err := json.NewDecoder(res.Body).Decode(&meta); err != nil {
		return UploadResult{}, err
	}

	s.log.Debug().Str("object", object).Int("bytes", len(data)).Msg("profile photo uploaded")
	return UploadResult{
		Object:      object,
		DownloadURL: s.downloadURL(object, meta.DownloadTokens),
	}, nil
}

// DeleteObject removes a previously uploaded object, used when a profile
// photo is replaced or cleared.
func (s *Service) DeleteObject(ctx context.Context, object string) error {
	target := fmt.Sprintf("%s/b/%s/o/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(object))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, req); err != nil {
		return err
	}

	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("storage: delete failed (%d)", res.StatusCode)
	}
	return nil
}

func (s *Service) authorize(ctx context.Context, req *http.Request) error {
	if s.tokens == nil {
		return nil
	}
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Firebase "+token)
	}
	return nil
}

func (s *Service) downloadURL(object, token string) string {
	u := fmt.Sprintf("%s/b/%s/o/%s?alt=media", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(object))
	if token != "" {
		u += "&token=" + url.QueryEscape(token)
	}
	return u
}
