package image

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PlaceholderURL is the bundled asset served when every search strategy
// comes up empty.
const PlaceholderURL = "/assets/logo.png"

const placeholderCredit = "Default image"

// Descriptor is a single displayable image: URL, alt text and attribution.
type Descriptor struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Credit string `json:"credit"`
}

func Placeholder(alt string) Descriptor {
	return Descriptor{URL: PlaceholderURL, Alt: alt, Credit: placeholderCredit}
}

// strategy is one attempt in an ordered fallback chain: a search phrase, the
// alt text to use on a hit, and a per-attempt timeout.
type strategy struct {
	query   string
	alt     string
	timeout time.Duration
	full    bool // prefer the full-resolution variant (covers)
}

const strategyTimeout = 5 * time.Second

// Picker selects representative images for trip cards, guide cards and blog
// covers. Fallbacks are an explicit ordered strategy list rather than nested
// error handling: the first strategy that yields a photo wins, and exhaustion
// yields the local placeholder. No result is cached; repeated calls may
// return different images.
type Picker struct {
	images *Client
	log    zerolog.Logger
	now    func() time.Time
}

func NewPicker(images *Client, log zerolog.Logger) *Picker {
	return &Picker{images: images, log: log, now: time.Now}
}

// TripCard picks an image for a trip card. activity is an optional qualifier
// such as "beach" or "mountain".
func (p *Picker) TripCard(ctx context.Context, destination, activity string) Descriptor {
	chain := []strategy{
		{query: destination + " travel destination", alt: destination + " travel destination", timeout: strategyTimeout},
		{query: "travel destination landscape", alt: "Travel destination", timeout: strategyTimeout},
	}
	if activity != "" {
		chain[0] = strategy{
			query:   destination + " " + activity + " travel",
			alt:     destination + " travel destination",
			timeout: strategyTimeout,
		}
	}
	return p.pick(ctx, chain, "Travel destination")
}

// GuideCard picks an image for a guide card, trying guide-flavored queries
// before falling back to the trip-card chain.
func (p *Picker) GuideCard(ctx context.Context, destination, guideType string) Descriptor {
	query := destination + " travel guide"
	if guideType != "" {
		query = destination + " " + guideType + " guide"
	}
	chain := []strategy{
		{query: query, alt: destination + " travel guide", timeout: strategyTimeout},
		{query: destination + " travel destination", alt: destination + " travel destination", timeout: strategyTimeout},
		{query: "travel destination landscape", alt: "Travel destination", timeout: strategyTimeout},
	}
	return p.pick(ctx, chain, "Travel guide")
}

// Seasonal biases the search toward the current season, then degrades to the
// plain trip-card chain.
func (p *Picker) Seasonal(ctx context.Context, destination string) Descriptor {
	season := string(SeasonOf(p.now()))
	chain := []strategy{
		{query: destination + " " + season + " season", alt: destination + " in " + season, timeout: strategyTimeout},
		{query: destination + " travel destination", alt: destination + " travel destination", timeout: strategyTimeout},
		{query: "travel destination landscape", alt: "Travel destination", timeout: strategyTimeout},
	}
	return p.pick(ctx, chain, "Travel destination")
}

// BlogCover derives keyword queries from the post title and tags and picks a
// full-resolution cover image.
func (p *Picker) BlogCover(ctx context.Context, title string, tags []string) Descriptor {
	keywords := extractKeywords(title, tags)
	alt := "Travel blog cover"
	if len(keywords) > 0 {
		alt = joinWords(keywords) + " travel destination"
	}

	var chain []strategy
	for _, q := range coverQueries(keywords) {
		chain = append(chain, strategy{query: q, alt: alt, timeout: strategyTimeout, full: true})
	}
	return p.pick(ctx, chain, "Travel blog cover")
}

// Gallery returns up to n images for a destination carousel. Failures yield
// an empty slice rather than an error.
func (p *Picker) Gallery(ctx context.Context, destination string, n int) []Descriptor {
	res, err := p.images.Search(ctx, destination, 1, n)
	if err != nil {
		p.log.Debug().Str("destination", destination).Err(err).Msg("gallery search failed")
		return nil
	}
	out := make([]Descriptor, 0, len(res.Results))
	for _, photo := range res.Results {
		out = append(out, describe(photo, destination+" travel destination", false))
	}
	return out
}

// DestinationHeroes fetches one card image per destination concurrently.
// Any failure cancels the remaining fetches and fails the batch.
func (p *Picker) DestinationHeroes(ctx context.Context, destinations []string) ([]Descriptor, error) {
	out := make([]Descriptor, len(destinations))
	g, ctx := errgroup.WithContext(ctx)
	for i, dest := range destinations {
		i, dest := i, dest
		g.Go(func() error {
			res, err := p.images.Search(ctx, dest+" travel destination", 1, 1)
			if err != nil {
				return err
			}
			if len(res.Results) == 0 {
				out[i] = Placeholder(dest + " travel destination")
				return nil
			}
			out[i] = describe(res.Results[0], dest+" travel destination", false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Picker) pick(ctx context.Context, chain []strategy, fallbackAlt string) Descriptor {
	for _, s := range chain {
		attempt, cancel := context.WithTimeout(ctx, s.timeout)
		res, err := p.images.Search(attempt, s.query, 1, 5)
		cancel()
		if err != nil {
			p.log.Debug().Str("query", s.query).Err(err).Msg("image strategy failed")
			continue
		}
		if len(res.Results) == 0 {
			continue
		}
		return describe(res.Results[0], s.alt, s.full)
	}
	return Placeholder(fallbackAlt)
}

func describe(photo Photo, fallbackAlt string, full bool) Descriptor {
	u := photo.URLs.Regular
	if full && photo.URLs.Full != "" {
		u = photo.URLs.Full
	}
	alt := photo.AltDescription
	if alt == "" {
		alt = fallbackAlt
	}
	return Descriptor{
		URL:    u,
		Alt:    alt,
		Credit: "Photo by " + photo.User.Name + " on Unsplash",
	}
}
