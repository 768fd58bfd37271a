package models

import "encoding/json"

// User represents an account as returned by the API.
type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Website    string `json:"website"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"cover_image"`
	JoinedDate string `json:"joined_date"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Author is the abbreviated user record embedded on recipes and comments.
type Author struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Recipe mirrors the server's recipe resource. Ingredients, Steps and
// Nutrition arrive as server-serialized JSON strings and are parsed on
// demand.
type Recipe struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CookingTime  string    `json:"cooking_time"`
	Time         string    `json:"time"`
	Difficulty   string    `json:"difficulty"`
	Servings     string    `json:"servings"`
	CuisineType  string    `json:"cuisine_type"`
	IsPublic     bool      `json:"is_public"`
	AllowCopy    bool      `json:"allow_copy"`
	Image        string    `json:"image"`
	YoutubeVideo string    `json:"youtube_video"`
	Ingredients  JSONField `json:"ingredients"`
	Instructions JSONField `json:"instructions"`
	Steps        JSONField `json:"steps"`
	Nutrition    JSONField `json:"nutrition"`
	Tags         JSONField `json:"tags"`
	AuthorID     int       `json:"author_id"`
	Author       *Author   `json:"author"`
	Comments     []Comment `json:"comments"`
	Views        int       `json:"views"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// IngredientList parses the ingredients field into a string slice.
func (r *Recipe) IngredientList() []string {
	return r.Ingredients.StringSlice()
}

// StepList parses the steps field, falling back to instructions when the
// server sent the older field name.
func (r *Recipe) StepList() []string {
	if steps := r.Steps.StringSlice(); len(steps) > 0 {
		return steps
	}
	return r.Instructions.StringSlice()
}

// NutritionFacts parses the nutrition field into a key/value map.
func (r *Recipe) NutritionFacts() map[string]string {
	return r.Nutrition.StringMap()
}

// JSONField holds a value the server serializes inconsistently: either a
// JSON string containing JSON, or the JSON value itself.
type JSONField struct {
	raw string
}

func (f *JSONField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.raw = s
		return nil
	}
	f.raw = string(data)
	return nil
}

func (f JSONField) MarshalJSON() ([]byte, error) {
	if f.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(f.raw)
}

// Raw returns the field's serialized form.
func (f JSONField) Raw() string { return f.raw }

// StringSlice parses the field as a JSON array of strings. Anything else
// yields nil.
func (f JSONField) StringSlice() []string {
	if f.raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(f.raw), &out); err != nil {
		return nil
	}
	return out
}

// StringMap parses the field as a JSON object of strings.
func (f JSONField) StringMap() map[string]string {
	if f.raw == "" {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(f.raw), &out); err != nil {
		return nil
	}
	return out
}

// Collection is a named group of recipes owned by a user.
type Collection struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	CoverImage  string `json:"cover_image"`
	UserID      int    `json:"user_id"`
	RecipeCount int    `json:"recipe_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Comment is attached to a recipe.
type Comment struct {
	ID        int     `json:"id"`
	Content   string  `json:"content"`
	RecipeID  int     `json:"recipe_id"`
	UserID    int     `json:"user_id"`
	User      *Author `json:"user"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// Cuisine is a browsable cuisine category.
type Cuisine struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Paginated wraps the API's page envelope for list endpoints that
// paginate server-side.
type Paginated[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// RecipeStatus carries the viewer-specific derived flags fetched
// separately from the recipe itself.
type RecipeStatus struct {
	IsLiked bool `json:"is_liked"`
	IsSaved bool `json:"is_saved"`
}
