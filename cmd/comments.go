package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment on recipes",
	}

	cmd.AddCommand(newCommentAddCmd(app))
	cmd.AddCommand(newCommentEditCmd(app))
	cmd.AddCommand(newCommentDeleteCmd(app))

	return cmd
}

func newCommentAddCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add RECIPE_ID",
		Short: "Add a comment to a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			recipeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			comment, err := app.Recipes.AddComment(cmd.Context(), recipeID, content)
			if err != nil {
				return fmt.Errorf("failed to add comment: %s", describeErr(err))
			}
			fmt.Printf("Added comment %d\n", comment.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "message", "m", "", "Comment text")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newCommentEditCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "edit RECIPE_ID COMMENT_ID",
		Short: "Edit one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			recipeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if _, err := app.Recipes.UpdateComment(cmd.Context(), recipeID, commentID, content); err != nil {
				return fmt.Errorf("failed to edit comment: %s", describeErr(err))
			}
			fmt.Printf("Updated comment %d\n", commentID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "message", "m", "", "New comment text")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newCommentDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete RECIPE_ID COMMENT_ID",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			recipeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := app.Recipes.DeleteComment(cmd.Context(), recipeID, commentID); err != nil {
				return fmt.Errorf("failed to delete comment: %s", describeErr(err))
			}
			fmt.Printf("Deleted comment %d\n", commentID)
			return nil
		},
	}
}
