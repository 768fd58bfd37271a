package recipes

import (
	"context"
	"fmt"

	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// Comments come embedded on a fetched recipe; the nested endpoints here
// mutate them and reconcile the single-item cache's comment slice.

// AddComment posts a comment and appends it to the cached recipe.
func (s *Store) AddComment(ctx context.Context, recipeID int, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}
	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	if err := s.client.Post(ctx, fmt.Sprintf("/recipes/%d/comments", recipeID), body, &resp); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.recipe != nil && s.recipe.ID == recipeID {
		s.recipe.Comments = append(s.recipe.Comments, resp.Comment)
	}
	s.mu.Unlock()
	return &resp.Comment, nil
}

// UpdateComment edits a comment and replaces it in the cached recipe.
func (s *Store) UpdateComment(ctx context.Context, recipeID, commentID int, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}
	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	endpoint := fmt.Sprintf("/recipes/%d/comments/%d", recipeID, commentID)
	if err := s.client.Put(ctx, endpoint, body, &resp); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.recipe != nil && s.recipe.ID == recipeID {
		for i := range s.recipe.Comments {
			if s.recipe.Comments[i].ID == commentID {
				s.recipe.Comments[i] = resp.Comment
			}
		}
	}
	s.mu.Unlock()
	return &resp.Comment, nil
}

// DeleteComment removes a comment and filters it out of the cached
// recipe.
func (s *Store) DeleteComment(ctx context.Context, recipeID, commentID int) error {
	endpoint := fmt.Sprintf("/recipes/%d/comments/%d", recipeID, commentID)
	if err := s.client.Delete(ctx, endpoint, nil); err != nil {
		return err
	}
	s.mu.Lock()
	if s.recipe != nil && s.recipe.ID == recipeID {
		kept := s.recipe.Comments[:0]
		for _, c := range s.recipe.Comments {
			if c.ID != commentID {
				kept = append(kept, c)
			}
		}
		s.recipe.Comments = kept
	}
	s.mu.Unlock()
	return nil
}
