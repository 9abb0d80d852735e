package image

import (
	"reflect"
	"testing"
)

func TestExtractKeywordsTagsFirst(t *testing.T) {
	got := extractKeywords("Hiking the temples of Kyoto", []string{"japan", "autumn"})
	want := []string{"japan", "autumn", "hiking", "Kyoto"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected keywords: %v", got)
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	got := extractKeywords("Travel food budget guide tips", []string{"a1", "b2", "c3", "d4"})
	if len(got) != maxKeywords {
		t.Fatalf("expected cap at %d, got %v", maxKeywords, got)
	}
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	got := extractKeywords("Food food FOOD", []string{"food"})
	if len(got) != 1 || got[0] != "food" {
		t.Fatalf("expected single deduplicated keyword, got %v", got)
	}
}

func TestCoverQueriesAlwaysEndGeneric(t *testing.T) {
	qs := coverQueries(nil)
	if len(qs) != 3 || qs[0] != "travel destination" {
		t.Fatalf("unexpected generic queries: %v", qs)
	}

	qs = coverQueries([]string{"Kyoto", "autumn"})
	if qs[0] != "Kyoto autumn travel" || qs[len(qs)-1] != "adventure travel" {
		t.Fatalf("unexpected query chain: %v", qs)
	}
}
