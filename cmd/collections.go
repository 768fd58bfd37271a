package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
	"github.com/Sreehari2710/recipie-frontend/internal/render"
)

func newCollectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Organize recipes into collections",
	}

	cmd.AddCommand(newCollectionsListCmd(app))
	cmd.AddCommand(newCollectionsGetCmd(app))
	cmd.AddCommand(newCollectionsCreateCmd(app))
	cmd.AddCommand(newCollectionsUpdateCmd(app))
	cmd.AddCommand(newCollectionsDeleteCmd(app))
	cmd.AddCommand(newCollectionsAddRecipeCmd(app))
	cmd.AddCommand(newCollectionsRemoveRecipeCmd(app))

	return cmd
}

func newCollectionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Collections.Fetch(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch collections: %s", describeErr(err))
			}
			list := app.Collections.Collections()
			if len(list) == 0 {
				fmt.Println("No collections found")
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.CollectionList(list))
		},
	}
}

func newCollectionsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a collection and its recipes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			collection, err := app.Collections.FetchOne(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch collection %d: %s", id, describeErr(err))
			}
			if err := render.YAML(cmd.OutOrStdout(), render.CollectionList([]models.Collection{*collection})); err != nil {
				return err
			}
			recipes, err := app.Collections.FetchRecipes(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch collection recipes: %s", describeErr(err))
			}
			if len(recipes) == 0 {
				fmt.Println("No recipes in this collection yet")
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.RecipeList(recipes))
		},
	}
}

// collectionForm builds the multipart body for create and update.
func collectionForm(name, description string, public bool, coverPath string) (*api.Form, error) {
	form := api.NewForm().
		Set("name", name).
		Set("description", description).
		Set("is_public", boolField(public))
	if coverPath != "" {
		if err := form.AddFilePath("cover_image", coverPath); err != nil {
			return nil, err
		}
	}
	return form, nil
}

func newCollectionsCreateCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		public      bool
		coverPath   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			form, err := collectionForm(name, description, public, coverPath)
			if err != nil {
				return err
			}
			collection, err := app.Collections.Create(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to create collection: %s", describeErr(err))
			}
			fmt.Printf("Created collection %d: %s\n", collection.ID, collection.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Collection name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().BoolVar(&public, "public", true, "Make the collection publicly visible")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Path to a cover image to upload")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCollectionsUpdateCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		public      bool
		coverPath   string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a collection you own",
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
			current, err := app.Collections.FetchOne(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch collection %d: %s", id, describeErr(err))
			}
			// Owner check before the round trip; the server enforces it
			// too and answers 403.
			if current.UserID != user.ID {
				return fmt.Errorf("collection %d belongs to another user", id)
			}
			flags := cmd.Flags()
			if !flags.Changed("name") {
				name = current.Name
			}
			if !flags.Changed("description") {
				description = current.Description
			}
			if !flags.Changed("public") {
				public = current.IsPublic
			}
			form, err := collectionForm(name, description, public, coverPath)
			if err != nil {
				return err
			}
			collection, err := app.Collections.Update(cmd.Context(), id, form)
			if err != nil {
				return fmt.Errorf("failed to update collection %d: %s", id, describeErr(err))
			}
			fmt.Printf("Updated collection %d: %s\n", collection.ID, collection.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Collection name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().BoolVar(&public, "public", true, "Make the collection publicly visible")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Path to a cover image to upload")

	return cmd
}

func newCollectionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Collections.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete collection %d: %s", id, describeErr(err))
			}
			fmt.Printf("Deleted collection %d\n", id)
			return nil
		},
	}
}

func newCollectionsAddRecipeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-recipe COLLECTION_ID RECIPE_ID...",
		Short: "Add recipes to a collection",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			collectionID, err := parseID(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				recipeID, err := parseID(arg)
				if err != nil {
					return err
				}
				if err := app.Collections.AddRecipe(cmd.Context(), collectionID, recipeID); err != nil {
					return fmt.Errorf("failed to add recipe %d: %s", recipeID, describeErr(err))
				}
				fmt.Printf("Added recipe %d to collection %d\n", recipeID, collectionID)
			}
			return nil
		},
	}
}

func newCollectionsRemoveRecipeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-recipe COLLECTION_ID RECIPE_ID",
		Short: "Remove a recipe from a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			collectionID, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipeID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := app.Collections.RemoveRecipe(cmd.Context(), collectionID, recipeID); err != nil {
				return fmt.Errorf("failed to remove recipe %d: %s", recipeID, describeErr(err))
			}
			fmt.Printf("Removed recipe %d from collection %d\n", recipeID, collectionID)
			return nil
		},
	}
}
