package users

import (
	"context"
	"fmt"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// Service wraps the profile endpoints. It holds no cache: profile pages
// re-fetch what they need on every visit.
type Service struct {
	client *api.Client
}

func New(client *api.Client) *Service {
	return &Service{client: client}
}

// Me fetches the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Get(ctx, "/auth/me", &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Get fetches any user's public profile.
func (s *Service) Get(ctx context.Context, id int) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile submits the profile form through the method-override
// PUT route; avatar and cover files may ride along in the same form.
func (s *Service) UpdateProfile(ctx context.Context, id int, form *api.Form) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.PutForm(ctx, fmt.Sprintf("/users/%d", id), form, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UploadAvatar replaces the user's avatar image.
func (s *Service) UploadAvatar(ctx context.Context, id int, path string) (*models.User, error) {
	return s.uploadImage(ctx, fmt.Sprintf("/users/%d/avatar", id), "avatar", path)
}

// UploadCover replaces the user's cover image.
func (s *Service) UploadCover(ctx context.Context, id int, path string) (*models.User, error) {
	return s.uploadImage(ctx, fmt.Sprintf("/users/%d/cover", id), "cover_image", path)
}

func (s *Service) uploadImage(ctx context.Context, endpoint, field, path string) (*models.User, error) {
	form := api.NewForm()
	if err := form.AddFilePath(field, path); err != nil {
		return nil, err
	}
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Upload(ctx, endpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Recipes lists the user's own recipes with pagination metadata.
func (s *Service) Recipes(ctx context.Context, id int) (*models.Paginated[models.Recipe], error) {
	var resp struct {
		Recipes models.Paginated[models.Recipe] `json:"recipes"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d/recipes", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Recipes, nil
}

// Collections lists the user's collections.
func (s *Service) Collections(ctx context.Context, id int) (*models.Paginated[models.Collection], error) {
	var resp struct {
		Collections models.Paginated[models.Collection] `json:"collections"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d/collections", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Collections, nil
}

// Saved lists the recipes the user has favorited.
func (s *Service) Saved(ctx context.Context, id int) (*models.Paginated[models.Recipe], error) {
	var resp struct {
		Recipes models.Paginated[models.Recipe] `json:"recipes"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d/saved", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Recipes, nil
}
