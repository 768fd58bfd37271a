package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sreehari2710/recipie-frontend/internal/render"
	"github.com/Sreehari2710/recipie-frontend/internal/search"
)

func newCuisinesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cuisines",
		Short: "List browsable cuisine categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cuisines, err := search.Cuisines(cmd.Context(), app.Client)
			if err != nil {
				return fmt.Errorf("failed to fetch cuisines: %s", describeErr(err))
			}
			if len(cuisines) == 0 {
				fmt.Println("No cuisines found")
				return nil
			}
			return render.YAML(cmd.OutOrStdout(), cuisines)
		},
	}
}
