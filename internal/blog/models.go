package blog

import (
	"encoding/json"
	"strings"
	"time"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

type Author struct {
	ID          int64  `json:"id"`
	FirebaseUID string `json:"firebaseUid"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
}

type CoverImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Credit string `json:"credit"`
}

// BlogPost is the backend record. Content is the serialized block-editor
// document and is kept opaque here; Blocks and PlainText interpret it.
type BlogPost struct {
	ID            int64           `json:"id,omitempty"`
	Title         string          `json:"title"`
	Content       json.RawMessage `json:"content,omitempty"`
	Tags          []string        `json:"tags"`
	Status        Status          `json:"status,omitempty"`
	PublicSlug    string          `json:"publicSlug,omitempty"`
	Author        *Author         `json:"author,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
	PublishedAt   *time.Time      `json:"publishedAt,omitempty"`
	ViewCount     int64           `json:"viewCount,omitempty"`
	AverageRating *float64        `json:"averageRating,omitempty"`
	RatingCount   *int64          `json:"ratingCount,omitempty"`
	CoverImage    *CoverImage     `json:"coverImage,omitempty"`
}

// Page is the backend's paged envelope for post listings.
type Page struct {
	Content       []BlogPost `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Size          int        `json:"size"`
	Number        int        `json:"number"`
}

type PublishResponse struct {
	Message   string   `json:"message"`
	BlogPost  BlogPost `json:"blogPost"`
	PublicURL string   `json:"publicUrl"`
}

// Block is one element of the serialized editor document.
type Block struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type document struct {
	Time    int64   `json:"time"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version"`
}

// Blocks parses the post content into its editor blocks.
func (p *BlogPost) Blocks() ([]Block, error) {
	if len(p.Content) == 0 {
		return nil, nil
	}
	var doc document
	if err := json.Unmarshal(p.Content, &doc); err != nil {
		return nil, err
	}
	return doc.Blocks, nil
}

// PlainText flattens the textual blocks (paragraphs, headers, quotes) into a
// newline-joined preview string. Inline markup is stripped naively.
func (p *BlogPost) PlainText() string {
	blocks, err := p.Blocks()
	if err != nil {
		return ""
	}
	var parts []string
	for _, b := range blocks {
		switch b.Type {
		case "paragraph", "header", "quote":
			var data struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal(b.Data, &data); err != nil {
				continue
			}
			if text := stripTags(data.Text); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, "\n")
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
