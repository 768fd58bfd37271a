package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
	"github.com/Sreehari2710/recipie-frontend/internal/render"
	"github.com/Sreehari2710/recipie-frontend/internal/search"
	"github.com/Sreehari2710/recipie-frontend/internal/session"
)

// homeData is everything the landing view shows. The sections load
// independently: one failing does not block the others.
type homeData struct {
	Popular  []render.RecipeSummary `yaml:"popular,omitempty"`
	Recent   []render.RecipeSummary `yaml:"recent,omitempty"`
	Saved    []render.RecipeSummary `yaml:"saved,omitempty"`
	Cuisines []models.Cuisine       `yaml:"cuisines,omitempty"`
	Errors   []string               `yaml:"errors,omitempty"`
}

func newHomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the landing view: popular and recent recipes, your saved list, cuisines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// The saved section only renders for a signed-in user; the
			// rest of the view is public.
			if err := app.Session.Probe(ctx); err != nil {
				return err
			}
			user := app.Session.User()

			var (
				mu   sync.Mutex
				wg   sync.WaitGroup
				data homeData
			)
			fail := func(section string, err error) {
				mu.Lock()
				data.Errors = append(data.Errors, fmt.Sprintf("%s: %s", section, describeErr(err)))
				mu.Unlock()
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				var resp struct {
					Recipes []models.Recipe `json:"recipes"`
				}
				q := api.Query{}.Add("sort", "popular")
				if err := app.Client.Get(ctx, q.Endpoint("/recipes"), &resp); err != nil {
					fail("popular", err)
					return
				}
				mu.Lock()
				data.Popular = render.RecipeList(resp.Recipes)
				mu.Unlock()
			}()

			wg.Add(1)
			go func() {
				defer wg.Done()
				var resp struct {
					Recipes []models.Recipe `json:"recipes"`
				}
				q := api.Query{}.Add("sort", "recent")
				if err := app.Client.Get(ctx, q.Endpoint("/recipes"), &resp); err != nil {
					fail("recent", err)
					return
				}
				mu.Lock()
				data.Recent = render.RecipeList(resp.Recipes)
				mu.Unlock()
			}()

			if user != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					page, err := app.Users.Saved(ctx, user.ID)
					if err != nil {
						fail("saved", err)
						return
					}
					mu.Lock()
					data.Saved = render.RecipeList(page.Data)
					mu.Unlock()
				}()
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				cuisines, err := search.Cuisines(ctx, app.Client)
				if err != nil {
					fail("cuisines", err)
					return
				}
				mu.Lock()
				data.Cuisines = cuisines
				mu.Unlock()
			}()

			wg.Wait()

			if app.Session.State() == session.StateAnonymous {
				fmt.Println("Sign in with `recipie auth login` to see your saved recipes")
			}
			return render.YAML(cmd.OutOrStdout(), data)
		},
	}
}
