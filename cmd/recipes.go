package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
	"github.com/Sreehari2710/recipie-frontend/internal/render"
	"github.com/Sreehari2710/recipie-frontend/internal/views"
)

func newRecipesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse, create and manage recipes",
	}

	cmd.AddCommand(newRecipesListCmd(app))
	cmd.AddCommand(newRecipesGetCmd(app))
	cmd.AddCommand(newRecipesCreateCmd(app))
	cmd.AddCommand(newRecipesUpdateCmd(app))
	cmd.AddCommand(newRecipesDeleteCmd(app))
	cmd.AddCommand(newRecipesToggleCmd(app, "like", "Like a recipe", app.likeRecipe))
	cmd.AddCommand(newRecipesToggleCmd(app, "unlike", "Remove a like", app.unlikeRecipe))
	cmd.AddCommand(newRecipesToggleCmd(app, "save", "Save a recipe to favorites", app.saveRecipe))
	cmd.AddCommand(newRecipesToggleCmd(app, "unsave", "Remove a recipe from favorites", app.unsaveRecipe))
	cmd.AddCommand(newRecipesStatusCmd(app))
	cmd.AddCommand(newCommentsCmd(app))

	return cmd
}

func newRecipesListCmd(app *App) *cobra.Command {
	var (
		search  string
		sortKey string
		cuisine string
		params  []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Long: `Lists recipes from the server.

--cuisine and --param are forwarded to the API as query parameters, in the
order given. --search and --sort shape the fetched list client-side.`,
		Example: `  recipie recipes list
  recipie recipes list --cuisine italian --sort time
  recipie recipes list --param sort=popular`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var query api.Query
			if cuisine != "" {
				query = query.Add("cuisine", cuisine)
			}
			for _, p := range params {
				key, value, found := strings.Cut(p, "=")
				if !found {
					return fmt.Errorf("invalid --param %q, expected key=value", p)
				}
				query = query.Add(key, value)
			}

			if err := app.Recipes.Fetch(cmd.Context(), query); err != nil {
				return fmt.Errorf("failed to fetch recipes: %s", describeErr(err))
			}

			list := views.SortRecipes(views.FilterRecipes(app.Recipes.Recipes(), search), sortKey)
			if len(list) == 0 {
				fmt.Println("No recipes found")
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.RecipeList(list))
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by title, description or cuisine")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort order: recent, title or time")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "Filter by cuisine type server-side")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Extra key=value query parameters (repeatable)")

	return cmd
}

func newRecipesGetCmd(app *App) *cobra.Command {
	var withStatus bool

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show a single recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipe, err := app.Recipes.FetchOne(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch recipe %d: %s", id, describeErr(err))
			}
			if err := render.YAML(cmd.OutOrStdout(), render.Recipe(recipe)); err != nil {
				return err
			}
			if withStatus {
				status, err := app.Recipes.Status(cmd.Context(), id)
				if err != nil {
					// The recipe rendered fine; the viewer flags are extra.
					fmt.Fprintf(cmd.ErrOrStderr(), "Could not check liked/saved status: %s\n", describeErr(err))
					return nil
				}
				fmt.Printf("liked: %v\nsaved: %v\n", status.IsLiked, status.IsSaved)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withStatus, "status", false, "Also show your liked/saved flags")

	return cmd
}

// recipeFlags collects every writable recipe field from the command
// line, mirroring the create/edit form.
type recipeFlags struct {
	title        string
	description  string
	cookingTime  string
	difficulty   string
	servings     string
	cuisine      string
	public       bool
	allowCopy    bool
	youtube      string
	ingredients  []string
	steps        []string
	tags         []string
	calories     string
	fat          string
	carbs        string
	protein      string
	imagePath    string
}

func (f *recipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Recipe title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Short description")
	cmd.Flags().StringVar(&f.cookingTime, "cooking-time", "", "Cooking time, e.g. \"45 mins\"")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&f.servings, "servings", "", "Number of servings")
	cmd.Flags().StringVar(&f.cuisine, "cuisine", "", "Cuisine type")
	cmd.Flags().BoolVar(&f.public, "public", true, "Make the recipe publicly visible")
	cmd.Flags().BoolVar(&f.allowCopy, "allow-copy", true, "Allow others to copy the recipe")
	cmd.Flags().StringVar(&f.youtube, "youtube", "", "YouTube video URL")
	cmd.Flags().StringArrayVarP(&f.ingredients, "ingredient", "i", nil, "Ingredient (repeatable)")
	cmd.Flags().StringArrayVar(&f.steps, "step", nil, "Preparation step (repeatable)")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&f.calories, "calories", "", "Nutrition: calories")
	cmd.Flags().StringVar(&f.fat, "fat", "", "Nutrition: fat")
	cmd.Flags().StringVar(&f.carbs, "carbs", "", "Nutrition: carbs")
	cmd.Flags().StringVar(&f.protein, "protein", "", "Nutrition: protein")
	cmd.Flags().StringVar(&f.imagePath, "image", "", "Path to a recipe image to upload")
}

// form builds the multipart body the recipe endpoints expect: plain
// fields first, JSON-serialized arrays and objects next, the image file
// last.
func (f *recipeFlags) form() (*api.Form, error) {
	form := api.NewForm().
		Set("title", f.title).
		Set("description", f.description).
		Set("cooking_time", f.cookingTime).
		Set("difficulty", f.difficulty).
		Set("servings", f.servings).
		Set("cuisine_type", f.cuisine).
		Set("is_public", boolField(f.public)).
		Set("allow_copy", boolField(f.allowCopy)).
		Set("youtube_video", f.youtube)

	for _, field := range []struct {
		key    string
		values []string
	}{
		{"ingredients", f.ingredients},
		{"steps", f.steps},
		{"tags", f.tags},
	} {
		encoded, err := json.Marshal(orEmpty(field.values))
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", field.key, err)
		}
		form.Set(field.key, string(encoded))
	}

	nutrition, err := json.Marshal(map[string]string{
		"calories": f.calories,
		"fat":      f.fat,
		"carbs":    f.carbs,
		"protein":  f.protein,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode nutrition: %w", err)
	}
	form.Set("nutrition", string(nutrition))

	if f.imagePath != "" {
		if err := form.AddFilePath("image", f.imagePath); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// fillFrom seeds unset flags from an existing recipe so updates send
// the full record, matching the server's PUT contract.
func (f *recipeFlags) fillFrom(cmd *cobra.Command, r *models.Recipe) {
	flags := cmd.Flags()
	if !flags.Changed("title") {
		f.title = r.Title
	}
	if !flags.Changed("description") {
		f.description = r.Description
	}
	if !flags.Changed("cooking-time") {
		f.cookingTime = r.CookingTime
	}
	if !flags.Changed("difficulty") {
		f.difficulty = r.Difficulty
	}
	if !flags.Changed("servings") {
		f.servings = r.Servings
	}
	if !flags.Changed("cuisine") {
		f.cuisine = r.CuisineType
	}
	if !flags.Changed("public") {
		f.public = r.IsPublic
	}
	if !flags.Changed("allow-copy") {
		f.allowCopy = r.AllowCopy
	}
	if !flags.Changed("youtube") {
		f.youtube = r.YoutubeVideo
	}
	if !flags.Changed("ingredient") {
		f.ingredients = r.IngredientList()
	}
	if !flags.Changed("step") {
		f.steps = r.StepList()
	}
	if !flags.Changed("tag") {
		f.tags = r.Tags.StringSlice()
	}
	nutrition := r.NutritionFacts()
	if !flags.Changed("calories") {
		f.calories = nutrition["calories"]
	}
	if !flags.Changed("fat") {
		f.fat = nutrition["fat"]
	}
	if !flags.Changed("carbs") {
		f.carbs = nutrition["carbs"]
	}
	if !flags.Changed("protein") {
		f.protein = nutrition["protein"]
	}
}

func newRecipesCreateCmd(app *App) *cobra.Command {
	flags := &recipeFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe",
		Example: `  recipie recipes create -t "Carbonara" --cuisine italian \
      --cooking-time "30 mins" --difficulty easy --servings 4 \
      -i "200g spaghetti" -i "100g guanciale" --step "Boil the pasta" \
      --image ./carbonara.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			if len(flags.ingredients) == 0 {
				return fmt.Errorf("at least one --ingredient is required")
			}
			form, err := flags.form()
			if err != nil {
				return err
			}
			recipe, err := app.Recipes.Create(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to create recipe: %s", describeErr(err))
			}
			fmt.Printf("Created recipe %d: %s\n", recipe.ID, recipe.Title)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("cooking-time")
	_ = cmd.MarkFlagRequired("difficulty")
	_ = cmd.MarkFlagRequired("servings")
	_ = cmd.MarkFlagRequired("cuisine")

	return cmd
}

func newRecipesUpdateCmd(app *App) *cobra.Command {
	flags := &recipeFlags{}

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a recipe",
		Long: `Updates a recipe with a full-record PUT.

The current record is fetched first; flags you leave unset keep their
existing values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := app.Recipes.FetchOne(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch recipe %d: %s", id, describeErr(err))
			}
			flags.fillFrom(cmd, current)
			form, err := flags.form()
			if err != nil {
				return err
			}
			recipe, err := app.Recipes.Update(cmd.Context(), id, form)
			if err != nil {
				return fmt.Errorf("failed to update recipe %d: %s", id, describeErr(err))
			}
			fmt.Printf("Updated recipe %d: %s\n", recipe.ID, recipe.Title)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newRecipesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Recipes.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete recipe %d: %s", id, describeErr(err))
			}
			fmt.Printf("Deleted recipe %d\n", id)
			return nil
		},
	}
}

func newRecipesToggleCmd(app *App, use, short string, action func(cmd *cobra.Command, id int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return action(cmd, id)
		},
	}
}

func (a *App) likeRecipe(cmd *cobra.Command, id int) error {
	if err := a.Recipes.Like(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to like recipe %d: %s", id, describeErr(err))
	}
	fmt.Printf("Liked recipe %d\n", id)
	return nil
}

func (a *App) unlikeRecipe(cmd *cobra.Command, id int) error {
	if err := a.Recipes.Unlike(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to unlike recipe %d: %s", id, describeErr(err))
	}
	fmt.Printf("Unliked recipe %d\n", id)
	return nil
}

func (a *App) saveRecipe(cmd *cobra.Command, id int) error {
	if err := a.Recipes.Save(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to save recipe %d: %s", id, describeErr(err))
	}
	fmt.Printf("Saved recipe %d to favorites\n", id)
	return nil
}

func (a *App) unsaveRecipe(cmd *cobra.Command, id int) error {
	if err := a.Recipes.Unsave(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to unsave recipe %d: %s", id, describeErr(err))
	}
	fmt.Printf("Removed recipe %d from favorites\n", id)
	return nil
}

func newRecipesStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID",
		Short: "Show your liked/saved flags for a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := app.Recipes.Status(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch status for recipe %d: %s", id, describeErr(err))
			}
			fmt.Printf("liked: %v\nsaved: %v\n", status.IsLiked, status.IsSaved)
			return nil
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
