package render

import (
	"fmt"
	"io"

	"github.com/Sreehari2710/recipie-frontend/internal/models"
	"gopkg.in/yaml.v3"
)

// YAML writes any value to w as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// RecipeSummary is the condensed listing row.
type RecipeSummary struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	CuisineType string `yaml:"cuisine,omitempty"`
	CookingTime string `yaml:"cooking_time,omitempty"`
	Difficulty  string `yaml:"difficulty,omitempty"`
	Author      string `yaml:"author,omitempty"`
	CreatedAt   string `yaml:"created_at,omitempty"`
}

// RecipeList condenses recipes for listing output.
func RecipeList(recipes []models.Recipe) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		row := RecipeSummary{
			ID:          r.ID,
			Title:       r.Title,
			CuisineType: r.CuisineType,
			CookingTime: r.CookingTime,
			Difficulty:  r.Difficulty,
			CreatedAt:   r.CreatedAt,
		}
		if r.Author != nil {
			row.Author = r.Author.Name
		}
		out = append(out, row)
	}
	return out
}

// RecipeDetail is the full single-recipe view, with the JSON-string
// fields parsed into their display shapes.
type RecipeDetail struct {
	ID           int               `yaml:"id"`
	Title        string            `yaml:"title"`
	Description  string            `yaml:"description,omitempty"`
	CuisineType  string            `yaml:"cuisine,omitempty"`
	CookingTime  string            `yaml:"cooking_time,omitempty"`
	Difficulty   string            `yaml:"difficulty,omitempty"`
	Servings     string            `yaml:"servings,omitempty"`
	Public       bool              `yaml:"public"`
	Image        string            `yaml:"image,omitempty"`
	YoutubeVideo string            `yaml:"youtube_video,omitempty"`
	Ingredients  []string          `yaml:"ingredients,omitempty"`
	Steps        []string          `yaml:"steps,omitempty"`
	Nutrition    map[string]string `yaml:"nutrition,omitempty"`
	Author       string            `yaml:"author,omitempty"`
	Views        int               `yaml:"views,omitempty"`
	Comments     []CommentView     `yaml:"comments,omitempty"`
	CreatedAt    string            `yaml:"created_at,omitempty"`
}

// CommentView is a comment as shown under a recipe.
type CommentView struct {
	ID        int    `yaml:"id"`
	Author    string `yaml:"author,omitempty"`
	Content   string `yaml:"content"`
	CreatedAt string `yaml:"created_at,omitempty"`
}

// Recipe expands a recipe into its detail view.
func Recipe(r *models.Recipe) RecipeDetail {
	detail := RecipeDetail{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		CuisineType:  r.CuisineType,
		CookingTime:  r.CookingTime,
		Difficulty:   r.Difficulty,
		Servings:     r.Servings,
		Public:       r.IsPublic,
		Image:        r.Image,
		YoutubeVideo: r.YoutubeVideo,
		Ingredients:  r.IngredientList(),
		Steps:        r.StepList(),
		Nutrition:    r.NutritionFacts(),
		Views:        r.Views,
		CreatedAt:    r.CreatedAt,
	}
	if r.Author != nil {
		detail.Author = r.Author.Name
	}
	for _, c := range r.Comments {
		detail.Comments = append(detail.Comments, Comment(c))
	}
	return detail
}

// Comment condenses a comment for display.
func Comment(c models.Comment) CommentView {
	view := CommentView{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		view.Author = c.User.Name
	}
	return view
}

// CollectionSummary is the condensed collection listing row.
type CollectionSummary struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Public      bool   `yaml:"public"`
	RecipeCount int    `yaml:"recipe_count"`
}

// CollectionList condenses collections for listing output.
func CollectionList(collections []models.Collection) []CollectionSummary {
	out := make([]CollectionSummary, 0, len(collections))
	for _, c := range collections {
		out = append(out, CollectionSummary{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Public:      c.IsPublic,
			RecipeCount: c.RecipeCount,
		})
	}
	return out
}

// Profile is the user view shown by the profile commands.
type Profile struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Email    string `yaml:"email,omitempty"`
	Bio      string `yaml:"bio,omitempty"`
	Location string `yaml:"location,omitempty"`
	Website  string `yaml:"website,omitempty"`
	Joined   string `yaml:"joined,omitempty"`
}

// User condenses a user for display.
func User(u *models.User) Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Location: u.Location,
		Website:  u.Website,
		Joined:   u.JoinedDate,
	}
}
