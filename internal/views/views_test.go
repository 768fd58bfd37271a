package views

import (
	"testing"

	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

func sample() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Title: "Spaghetti Carbonara", Description: "Roman classic", CuisineType: "Italian", CookingTime: "30 mins", CreatedAt: "2025-03-01T10:00:00Z"},
		{ID: 2, Title: "Pho Bo", Description: "Beef noodle soup", CuisineType: "Vietnamese", CookingTime: "180 mins", CreatedAt: "2025-05-20T10:00:00Z"},
		{ID: 3, Title: "Dal Tadka", Description: "Comforting lentils", CuisineType: "Indian", CookingTime: "45 mins", CreatedAt: "2025-01-15T10:00:00Z"},
	}
}

func ids(recipes []models.Recipe) []int {
	out := make([]int, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterRecipes(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []int
	}{
		{name: "empty term keeps everything", term: "", expected: []int{1, 2, 3}},
		{name: "matches title", term: "pho", expected: []int{2}},
		{name: "matches description", term: "lentils", expected: []int{3}},
		{name: "matches cuisine", term: "italian", expected: []int{1}},
		{name: "case insensitive", term: "CARBONARA", expected: []int{1}},
		{name: "no match", term: "sushi", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterRecipes(sample(), tt.term))
			if !equalIDs(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSortRecipes(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected []int
	}{
		{name: "recent puts newest first", key: "recent", expected: []int{2, 1, 3}},
		{name: "title sorts alphabetically", key: "title", expected: []int{3, 2, 1}},
		{name: "time sorts shortest first", key: "time", expected: []int{1, 3, 2}},
		{name: "unknown key keeps input order", key: "bogus", expected: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortRecipes(sample(), tt.key))
			if !equalIDs(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSortRecipesUnparseableTimeSortsLast(t *testing.T) {
	recipes := []models.Recipe{
		{ID: 1, CookingTime: "quick"},
		{ID: 2, CookingTime: "20 mins"},
	}
	got := ids(SortRecipes(recipes, "time"))
	if !equalIDs(got, []int{2, 1}) {
		t.Errorf("Expected unparseable time last, got %v", got)
	}
}
