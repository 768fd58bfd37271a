package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/collections"
	"github.com/Sreehari2710/recipie-frontend/internal/config"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
	"github.com/Sreehari2710/recipie-frontend/internal/recipes"
	"github.com/Sreehari2710/recipie-frontend/internal/session"
	"github.com/Sreehari2710/recipie-frontend/internal/users"
)

// App wires the API client, session store and domain stores together.
// Everything is constructed per invocation; there is no package-level
// state.
type App struct {
	Config      *config.Config
	Client      *api.Client
	Session     *session.Store
	Recipes     *recipes.Store
	Collections *collections.Store
	Users       *users.Service
}

func (a *App) setup() {
	a.Config = config.Load()
	a.Client = api.New(a.Config.APIURL)
	a.Session = session.New(a.Client, session.NewTokenStore(a.Config.TokenFile))
	a.Recipes = recipes.New(a.Client)
	a.Collections = collections.New(a.Client)
	a.Users = users.New(a.Client)
}

// RequireUser probes the stored credential and fails with a sign-in
// hint when the session resolves anonymous. Protected commands call
// this before doing anything, the CLI analogue of the login redirect.
func (a *App) RequireUser(ctx context.Context) (*models.User, error) {
	if a.Session.State() == session.StateUnknown {
		if err := a.Session.Probe(ctx); err != nil {
			return nil, err
		}
	}
	user := a.Session.User()
	if user == nil {
		return nil, errors.New("you are not signed in: run `recipie auth login` first")
	}
	return user, nil
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "recipie",
		Short: "Command-line client for the recipe sharing API",
		Long: `Recipie is a terminal client for the recipe sharing platform.

Browse, create and edit recipes, organize them into collections, favorite
and comment on them, and manage your profile. All data lives behind the
remote REST API; sign in once and the bearer token is stored locally for
subsequent commands.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			app.setup()
		},
	}

	cmd.AddCommand(newAuthCmd(app))
	cmd.AddCommand(newRecipesCmd(app))
	cmd.AddCommand(newCollectionsCmd(app))
	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newFavoritesCmd(app))
	cmd.AddCommand(newHomeCmd(app))
	cmd.AddCommand(newCuisinesCmd(app))

	return cmd
}

// describeErr unwraps an API error into the message the server sent,
// with per-field validation lines when present.
func describeErr(err error) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	msg := apiErr.Message
	for field, problems := range apiErr.Errors {
		for _, p := range problems {
			msg += fmt.Sprintf("\n  %s: %s", field, p)
		}
	}
	return msg
}
