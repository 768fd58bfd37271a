package views

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// FilterRecipes keeps recipes whose title, description or cuisine type
// contains term, case-insensitively. An empty term keeps everything.
func FilterRecipes(recipes []models.Recipe, term string) []models.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return recipes
	}
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Title), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.CuisineType), term) {
			out = append(out, r)
		}
	}
	return out
}

// SortRecipes orders a copy of recipes by key: "recent" (newest first),
// "title" (A-Z) or "time" (shortest cooking time first). An unknown key
// leaves the order untouched.
func SortRecipes(recipes []models.Recipe, key string) []models.Recipe {
	out := make([]models.Recipe, len(recipes))
	copy(out, recipes)
	switch key {
	case "recent":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	case "title":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case "time":
		sort.SliceStable(out, func(i, j int) bool {
			return cookingMinutes(out[i]) < cookingMinutes(out[j])
		})
	}
	return out
}

// cookingMinutes pulls the leading number out of a cooking time string
// like "45 mins". Unparseable values sort last.
func cookingMinutes(r models.Recipe) int {
	fields := strings.Fields(r.CookingTime)
	if len(fields) == 0 {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
