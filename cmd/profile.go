package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/render"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(newProfileShowCmd(app))
	cmd.AddCommand(newProfileEditCmd(app))
	cmd.AddCommand(newProfileImageCmd(app, "avatar", "Upload a new avatar"))
	cmd.AddCommand(newProfileImageCmd(app, "cover", "Upload a new cover image"))
	cmd.AddCommand(newProfileRecipesCmd(app))
	cmd.AddCommand(newProfileCollectionsCmd(app))
	cmd.AddCommand(newProfileSavedCmd(app))

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.RequireUser(cmd.Context()); err != nil {
				return err
			}
			// Re-fetch rather than trusting the probe's cached copy, the
			// same way the profile page re-loads on every visit.
			user, err := app.Users.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load profile: %s", describeErr(err))
			}
			return render.YAML(cmd.OutOrStdout(), render.User(user))
		},
	}
}

func newProfileEditCmd(app *App) *cobra.Command {
	var (
		name      string
		username  string
		email     string
		bio       string
		location  string
		website   string
		avatar    string
		coverPath string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit your profile",
		Long: `Edits your profile with a full-record update.

Fields you leave unset keep their current values. Avatar and cover
images may be attached to the same submission.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("name") {
				name = user.Name
			}
			if !flags.Changed("username") {
				username = user.Username
			}
			if !flags.Changed("email") {
				email = user.Email
			}
			if !flags.Changed("bio") {
				bio = user.Bio
			}
			if !flags.Changed("location") {
				location = user.Location
			}
			if !flags.Changed("website") {
				website = user.Website
			}

			form := api.NewForm().
				Set("name", name).
				Set("username", username).
				Set("email", email).
				Set("bio", bio).
				Set("location", location).
				Set("website", website)
			if avatar != "" {
				if err := form.AddFilePath("avatar", avatar); err != nil {
					return err
				}
			}
			if coverPath != "" {
				if err := form.AddFilePath("cover_image", coverPath); err != nil {
					return err
				}
			}

			updated, err := app.Users.UpdateProfile(cmd.Context(), user.ID, form)
			if err != nil {
				return fmt.Errorf("failed to update profile: %s", describeErr(err))
			}
			fmt.Printf("Profile updated for @%s\n", updated.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&username, "username", "", "Unique handle")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&website, "website", "", "Website URL")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Path to a new avatar image")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Path to a new cover image")

	return cmd
}

func newProfileImageCmd(app *App, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PATH",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			upload := app.Users.UploadAvatar
			if use == "cover" {
				upload = app.Users.UploadCover
			}
			if _, err := upload(cmd.Context(), user.ID, args[0]); err != nil {
				return fmt.Errorf("upload failed: %s", describeErr(err))
			}
			fmt.Printf("Uploaded new %s\n", use)
			return nil
		},
	}
}

func newProfileRecipesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List your recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			page, err := app.Users.Recipes(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to load your recipes: %s", describeErr(err))
			}
			fmt.Printf("%d recipes\n", page.Total)
			if len(page.Data) == 0 {
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.RecipeList(page.Data))
		},
	}
}

func newProfileCollectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List your collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			page, err := app.Users.Collections(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to load your collections: %s", describeErr(err))
			}
			fmt.Printf("%d collections\n", page.Total)
			if len(page.Data) == 0 {
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.CollectionList(page.Data))
		},
	}
}

func newProfileSavedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List recipes you saved",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			page, err := app.Users.Saved(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to load saved recipes: %s", describeErr(err))
			}
			if len(page.Data) == 0 {
				fmt.Println("No saved recipes yet")
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), render.RecipeList(page.Data))
		},
	}
}
