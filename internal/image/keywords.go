package image

import (
	"strings"
	"unicode"
)

const maxKeywords = 5

// travelVocabulary is the fixed set of travel-related words worth promoting
// from a post title into a search query.
var travelVocabulary = map[string]struct{}{
	"travel": {}, "trip": {}, "journey": {}, "adventure": {}, "explore": {},
	"visit": {}, "destination": {}, "city": {}, "country": {}, "beach": {},
	"mountain": {}, "forest": {}, "desert": {}, "island": {}, "culture": {},
	"food": {}, "restaurant": {}, "hotel": {}, "accommodation": {}, "guide": {},
	"tips": {}, "itinerary": {}, "planning": {}, "budget": {}, "backpacking": {},
	"luxury": {}, "family": {}, "solo": {}, "couple": {}, "group": {},
	"hiking": {}, "camping": {}, "photography": {}, "nature": {}, "wildlife": {},
	"history": {}, "architecture": {}, "art": {}, "museum": {}, "temple": {},
	"church": {}, "castle": {}, "palace": {}, "market": {}, "street": {},
}

// extractKeywords pulls search keywords from a post title and tag list: tags
// first, then travel vocabulary from the title, then capitalized words that
// look like place names. Capped at five.
func extractKeywords(title string, tags []string) []string {
	var keywords []string
	seen := map[string]struct{}{}

	add := func(word string) {
		key := strings.ToLower(word)
		if _, dup := seen[key]; dup || word == "" {
			return
		}
		seen[key] = struct{}{}
		keywords = append(keywords, word)
	}

	for _, tag := range tags {
		add(strings.TrimSpace(tag))
	}

	fields := strings.Fields(title)
	for _, word := range fields {
		w := strings.ToLower(strings.Trim(word, ".,!?:;\"'"))
		if _, ok := travelVocabulary[w]; ok {
			add(w)
		}
	}
	for _, word := range fields {
		w := strings.Trim(word, ".,!?:;\"'")
		if looksLikePlaceName(w) {
			add(w)
		}
	}

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

func looksLikePlaceName(word string) bool {
	runes := []rune(word)
	return len(runes) > 2 && unicode.IsUpper(runes[0])
}

// coverQueries builds the ordered query list for a blog cover, ending with
// generic travel phrases so the chain always has something to try.
func coverQueries(keywords []string) []string {
	var queries []string
	if len(keywords) >= 2 {
		queries = append(queries,
			keywords[0]+" "+keywords[1]+" travel",
			keywords[0]+" "+keywords[1]+" destination",
		)
	}
	if len(keywords) >= 1 {
		queries = append(queries,
			keywords[0]+" travel",
			keywords[0]+" destination",
			keywords[0]+" landscape",
		)
	}
	return append(queries, "travel destination", "beautiful landscape", "adventure travel")
}

func joinWords(words []string) string {
	return strings.Join(words, " ")
}
