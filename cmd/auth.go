package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/render"
	"github.com/Sreehari2710/recipie-frontend/internal/session"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, register and manage the stored credential",
	}

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in and store the bearer token",
		Example: `  recipie auth login --email a@b.com --password secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %s", describeErr(err))
			}
			fmt.Printf("Signed in as %s (@%s)\n", user.Name, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var input session.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.PasswordConfirmation == "" {
				input.PasswordConfirmation = input.Password
			}
			user, err := app.Session.Register(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("registration failed: %s", describeErr(err))
			}
			fmt.Printf("Welcome, %s! You are signed in as @%s\n", user.Name, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Username, "username", "", "Unique handle")
	cmd.Flags().StringVarP(&input.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "Account password")
	cmd.Flags().StringVar(&input.PasswordConfirmation, "confirm-password", "", "Password confirmation (defaults to --password)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Probe installs the stored token so the server call is
			// authenticated; logout clears state even when it fails.
			if err := app.Session.Probe(cmd.Context()); err != nil {
				return err
			}
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.RequireUser(cmd.Context())
			if err != nil {
				return err
			}
			return render.YAML(cmd.OutOrStdout(), render.User(user))
		},
	}
}
