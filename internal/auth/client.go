package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultIdentityURL = "https://identitytoolkit.googleapis.com/v1"
	defaultTokenURL    = "https://securetoken.googleapis.com/v1"
)

// Credentials is the token bundle the identity provider hands back on every
// successful sign-in or refresh.
type Credentials struct {
	UID          string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

type User struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	Anonymous     bool
}

// Client talks to the Firebase Authentication REST surface.
type Client struct {
	apiKey      string
	identityURL string
	tokenURL    string
	http        *http.Client
	log         zerolog.Logger
}

type ClientOption func(*Client)

// WithEndpoints overrides the provider endpoints, used by tests.
func WithEndpoints(identityURL, tokenURL string) ClientOption {
	return func(c *Client) {
		c.identityURL = strings.TrimRight(identityURL, "/")
		c.tokenURL = strings.TrimRight(tokenURL, "/")
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

func NewClient(apiKey string, timeout time.Duration, log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:      apiKey,
		identityURL: defaultIdentityURL,
		tokenURL:    defaultTokenURL,
		http:        &http.Client{Timeout: timeout},
		log:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

func (r signInResponse) credentials() Credentials {
	ttl, err := strconv.Atoi(r.ExpiresIn)
	if err != nil || ttl <= 0 {
		ttl = 3600
	}
	return Credentials{
		UID:          r.LocalID,
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(ttl) * time.Second),
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Credentials, error) {
	var res signInResponse
	err := c.post(ctx, ":signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &res)
	if err != nil {
		return Credentials{}, err
	}
	return res.credentials(), nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (Credentials, error) {
	var res signInResponse
	err := c.post(ctx, ":signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &res)
	if err != nil {
		return Credentials{}, err
	}
	return res.credentials(), nil
}

// SignInAnonymously creates a throwaway guest identity.
func (c *Client) SignInAnonymously(ctx context.Context) (Credentials, error) {
	var res signInResponse
	err := c.post(ctx, ":signUp", map[string]any{"returnSecureToken": true}, &res)
	if err != nil {
		return Credentials{}, err
	}
	return res.credentials(), nil
}

// SignInWithGoogleIDToken exchanges a Google OAuth ID token (obtained by the
// caller's own consent flow) for provider credentials.
func (c *Client) SignInWithGoogleIDToken(ctx context.Context, googleIDToken string) (Credentials, error) {
	var res signInResponse
	err := c.post(ctx, ":signInWithIdp", map[string]any{
		"postBody":            "id_token=" + googleIDToken + "&providerId=google.com",
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}, &res)
	if err != nil {
		return Credentials{}, err
	}
	return res.credentials(), nil
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.post(ctx, ":sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

func (c *Client) SendEmailVerification(ctx context.Context, idToken string) error {
	return c.post(ctx, ":sendOobCode", map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}, nil)
}

// ApplyOobCode consumes an out-of-band action code (email verification link).
func (c *Client) ApplyOobCode(ctx context.Context, code string) error {
	return c.post(ctx, ":update", map[string]any{"oobCode": code}, nil)
}

// CheckOobCode inspects an action code without consuming it and returns the
// request type and target email.
func (c *Client) CheckOobCode(ctx context.Context, code string) (requestType, email string, err error) {
	var res struct {
		RequestType string `json:"requestType"`
		Email       string `json:"email"`
	}
	if err := c.post(ctx, ":resetPassword", map[string]any{"oobCode": code}, &res); err != nil {
		return "", "", err
	}
	return res.RequestType, res.Email, nil
}

func (c *Client) ChangePassword(ctx context.Context, idToken, newPassword string) (Credentials, error) {
	var res signInResponse
	err := c.post(ctx, ":update", map[string]any{
		"idToken":           idToken,
		"password":          newPassword,
		"returnSecureToken": true,
	}, &res)
	if err != nil {
		return Credentials{}, err
	}
	return res.credentials(), nil
}

// Lookup resolves the profile behind an ID token.
func (c *Client) Lookup(ctx context.Context, idToken string) (User, error) {
	var res struct {
		Users []struct {
			LocalID       string `json:"localId"`
			Email         string `json:"email"`
			DisplayName   string `json:"displayName"`
			PhotoURL      string `json:"photoUrl"`
			EmailVerified bool   `json:"emailVerified"`
		} `json:"users"`
	}
	if err := c.post(ctx, ":lookup", map[string]any{"idToken": idToken}, &res); err != nil {
		return User{}, err
	}
	if len(res.Users) == 0 {
		return User{}, &Error{Code: CodeEmailNotFound, raw: "no user for token"}
	}
	u := res.Users[0]
	return User{
		UID:           u.LocalID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		PhotoURL:      u.PhotoURL,
		EmailVerified: u.EmailVerified,
		Anonymous:     u.Email == "",
	}, nil
}

// Refresh exchanges a refresh token for a fresh ID token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Credentials, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	target := c.tokenURL + "/token?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return Credentials{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return Credentials{}, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Credentials{}, err
	}
	if res.StatusCode != http.StatusOK {
		return Credentials{}, providerError(raw)
	}

	var body struct {
		UserID       string `json:"user_id"`
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    string `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Credentials{}, err
	}
	ttl, err := strconv.Atoi(body.ExpiresIn)
	if err != nil || ttl <= 0 {
		ttl = 3600
	}
	return Credentials{
		UID:          body.UserID,
		IDToken:      body.IDToken,
		RefreshToken: body.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(ttl) * time.Second),
	}, nil
}

func (c *Client) post(ctx context.Context, action string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	target := c.identityURL + "/accounts" + action + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	c.log.Debug().
		Str("action", action).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("identity request")

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return providerError(raw)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func providerError(raw []byte) error {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Error.Message == "" {
		return &Error{Code: CodeUnknown, raw: strings.TrimSpace(string(raw))}
	}
	return &Error{Code: codeFor(body.Error.Message), raw: body.Error.Message}
}
