package image

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// maxPerPage is the Unsplash API page-size ceiling.
const maxPerPage = 30

type Photo struct {
	ID             string `json:"id"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Color          string `json:"color"`
	Likes          int    `json:"likes"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	User struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Links    struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
	Links struct {
		HTML     string `json:"html"`
		Download string `json:"download"`
	} `json:"links"`
}

type SearchResult struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

// Client queries an Unsplash-compatible photo search API.
type Client struct {
	base      string
	accessKey string
	http      *http.Client
	log       zerolog.Logger
}

func NewClient(baseURL, accessKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		base:      strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
		http:      &http.Client{Timeout: timeout},
		log:       log,
	}
}

// Search runs a landscape-oriented text search. perPage is capped at the API
// maximum of 30.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) (SearchResult, error) {
	q := url.Values{
		"query":       {query},
		"page":        {strconv.Itoa(page)},
		"per_page":    {strconv.Itoa(clampPerPage(perPage))},
		"orientation": {"landscape"},
	}
	var res SearchResult
	if err := c.get(ctx, "/search/photos", q, &res); err != nil {
		return SearchResult{}, err
	}
	return res, nil
}

// Random fetches count random photos, optionally biased by query.
func (c *Client) Random(ctx context.Context, query string, count int) ([]Photo, error) {
	q := url.Values{
		"count":       {strconv.Itoa(clampPerPage(count))},
		"orientation": {"landscape"},
	}
	if query != "" {
		q.Set("query", query)
	}
	var photos []Photo
	if err := c.get(ctx, "/photos/random", q, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// Collection lists photos in a curated collection. Collections carry no
// pagination metadata, so the result is synthesized from the page itself.
func (c *Client) Collection(ctx context.Context, collectionID string, page, perPage int) (SearchResult, error) {
	q := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(clampPerPage(perPage))},
	}
	var photos []Photo
	if err := c.get(ctx, "/collections/"+url.PathEscape(collectionID)+"/photos", q, &photos); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Total: len(photos), TotalPages: 1, Results: photos}, nil
}

func (c *Client) Photo(ctx context.Context, id string) (Photo, error) {
	var photo Photo
	if err := c.get(ctx, "/photos/"+url.PathEscape(id), nil, &photo); err != nil {
		return Photo{}, err
	}
	return photo, nil
}

// TrackDownload pings the download endpoint Unsplash requires for usage
// tracking. Failures are logged and ignored.
func (c *Client) TrackDownload(ctx context.Context, id string) {
	if err := c.get(ctx, "/photos/"+url.PathEscape(id)+"/download", nil, nil); err != nil {
		c.log.Debug().Str("photo", id).Err(err).Msg("download tracking failed")
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	c.log.Debug().
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("unsplash request")

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("unsplash: %s (%d): %s", path, res.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func clampPerPage(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxPerPage {
		return maxPerPage
	}
	return n
}
