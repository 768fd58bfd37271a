package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/render"
)

func newFavoritesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List your favorited recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			page, err := app.Users.Saved(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to load favorites: %s", describeErr(err))
			}
			if len(page.Data) == 0 {
				fmt.Println("No favorites yet. Save a recipe with `recipie recipes save ID`")
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.RecipeList(page.Data))
		},
	}

	cmd.AddCommand(newFavoritesRemoveCmd(app))

	return cmd
}

func newFavoritesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a recipe from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Recipes.Unsave(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to unsave recipe %d: %s", id, describeErr(err))
			}
			// Re-fetch the saved list so the output reflects the removal.
			page, err := app.Users.Saved(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to reload favorites: %s", describeErr(err))
			}
			fmt.Printf("Removed recipe %d; %d favorites remain\n", id, len(page.Data))
			return nil
		},
	}
}
