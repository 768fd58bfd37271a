package collections

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// Store mirrors the recipe store for collections: an in-memory list and
// single-item cache reconciled after each mutation, plus the join
// resource that tracks recipe membership.
type Store struct {
	client *api.Client

	mu          sync.RWMutex
	collections []models.Collection
	collection  *models.Collection
	lastErr     string
}

func New(client *api.Client) *Store {
	return &Store{client: client}
}

// Collections returns a copy of the cached list.
func (s *Store) Collections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}

// Collection returns the single-item cache, or nil.
func (s *Store) Collection() *models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection
}

// Err returns the message of the last failed operation, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) record(err error) {
	s.mu.Lock()
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
	s.mu.Unlock()
}

// Fetch GETs the paginated collection listing and replaces the list.
func (s *Store) Fetch(ctx context.Context) error {
	var resp struct {
		Collections models.Paginated[models.Collection] `json:"collections"`
	}
	err := s.client.Get(ctx, "/collections", &resp)
	s.record(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.collections = resp.Collections.Data
	s.mu.Unlock()
	return nil
}

// FetchOne GETs a single collection and replaces the single-item cache.
func (s *Store) FetchOne(ctx context.Context, id int) (*models.Collection, error) {
	var resp struct {
		Collection models.Collection `json:"collection"`
	}
	err := s.client.Get(ctx, fmt.Sprintf("/collections/%d", id), &resp)
	s.record(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.collection = &resp.Collection
	s.mu.Unlock()
	return &resp.Collection, nil
}

// Create POSTs the multipart form and prepends the returned record.
func (s *Store) Create(ctx context.Context, form *api.Form) (*models.Collection, error) {
	var resp struct {
		Collection models.Collection `json:"collection"`
	}
	err := s.client.Upload(ctx, "/collections", form, &resp)
	s.record(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.collections = append([]models.Collection{resp.Collection}, s.collections...)
	s.mu.Unlock()
	return &resp.Collection, nil
}

// Update PUTs the multipart form through the method-override route.
func (s *Store) Update(ctx context.Context, id int, form *api.Form) (*models.Collection, error) {
	var resp struct {
		Collection models.Collection `json:"collection"`
	}
	err := s.client.PutForm(ctx, fmt.Sprintf("/collections/%d", id), form, &resp)
	s.record(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.collections {
		if s.collections[i].ID == resp.Collection.ID {
			s.collections[i] = resp.Collection
		}
	}
	s.collection = &resp.Collection
	s.mu.Unlock()
	return &resp.Collection, nil
}

// Delete removes the collection and reconciles both caches.
func (s *Store) Delete(ctx context.Context, id int) error {
	err := s.client.Delete(ctx, fmt.Sprintf("/collections/%d", id), nil)
	s.record(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.collections[:0]
	for _, c := range s.collections {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.collections = kept
	if s.collection != nil && s.collection.ID == id {
		s.collection = nil
	}
	s.mu.Unlock()
	return nil
}

// FetchRecipes lists the recipes belonging to a collection.
func (s *Store) FetchRecipes(ctx context.Context, id int) ([]models.Recipe, error) {
	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	err := s.client.Get(ctx, fmt.Sprintf("/collections/%d/recipes", id), &resp)
	s.record(err)
	if err != nil {
		return nil, err
	}
	return resp.Recipes, nil
}

// AddRecipe adds a recipe to the collection via the join resource.
func (s *Store) AddRecipe(ctx context.Context, collectionID, recipeID int) error {
	body := map[string]int{"recipe_id": recipeID}
	err := s.client.Post(ctx, fmt.Sprintf("/collections/%d/recipes", collectionID), body, nil)
	s.record(err)
	return err
}

// RemoveRecipe removes a recipe from the collection.
func (s *Store) RemoveRecipe(ctx context.Context, collectionID, recipeID int) error {
	err := s.client.Delete(ctx, fmt.Sprintf("/collections/%d/recipes/%d", collectionID, recipeID), nil)
	s.record(err)
	return err
}
