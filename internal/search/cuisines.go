package search

import (
	"context"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// Cuisines fetches the browsable cuisine categories.
func Cuisines(ctx context.Context, client *api.Client) ([]models.Cuisine, error) {
	var resp struct {
		Cuisines []models.Cuisine `json:"cuisines"`
	}
	if err := client.Get(ctx, "/search/cuisines", &resp); err != nil {
		return nil, err
	}
	return resp.Cuisines, nil
}
