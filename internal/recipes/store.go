package recipes

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// Store keeps the fetched recipe list and a single-recipe cache in
// memory, reconciling both after each mutation. Operations share one
// loading flag and one error slot; concurrent writers race on them
// last-writer-wins, which is acceptable because commands do not issue
// concurrent writes.
type Store struct {
	client *api.Client

	mu      sync.RWMutex
	recipes []models.Recipe
	recipe  *models.Recipe
	loading bool
	lastErr string
}

func New(client *api.Client) *Store {
	return &Store{client: client}
}

// Recipes returns a copy of the cached list.
func (s *Store) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Recipe returns the single-item cache, or nil.
func (s *Store) Recipe() *models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipe
}

// Loading reports whether an operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the message of the last failed operation, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErr resets the shared error slot.
func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
}

// Fetch GETs the listing endpoint and replaces the whole in-memory
// list. query may be nil; keys are encoded in insertion order.
func (s *Store) Fetch(ctx context.Context, query api.Query) error {
	s.begin()
	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	err := s.client.Get(ctx, query.Endpoint("/recipes"), &resp)
	s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.recipes = resp.Recipes
	s.mu.Unlock()
	return nil
}

// FetchOne GETs a single recipe and replaces the single-item cache.
func (s *Store) FetchOne(ctx context.Context, id int) (*models.Recipe, error) {
	s.begin()
	var resp struct {
		Recipe models.Recipe `json:"recipe"`
	}
	err := s.client.Get(ctx, fmt.Sprintf("/recipes/%d", id), &resp)
	s.finish(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.recipe = &resp.Recipe
	s.mu.Unlock()
	return &resp.Recipe, nil
}

// Create POSTs the multipart form and prepends the server-returned
// record to the cached list.
func (s *Store) Create(ctx context.Context, form *api.Form) (*models.Recipe, error) {
	s.begin()
	var resp struct {
		Recipe models.Recipe `json:"recipe"`
	}
	err := s.client.Upload(ctx, "/recipes", form, &resp)
	s.finish(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.recipes = append([]models.Recipe{resp.Recipe}, s.recipes...)
	s.mu.Unlock()
	return &resp.Recipe, nil
}

// Update PUTs the multipart form through the method-override route and
// replaces the matching list entry and the single-item cache.
func (s *Store) Update(ctx context.Context, id int, form *api.Form) (*models.Recipe, error) {
	s.begin()
	var resp struct {
		Recipe models.Recipe `json:"recipe"`
	}
	err := s.client.PutForm(ctx, fmt.Sprintf("/recipes/%d", id), form, &resp)
	s.finish(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.recipes {
		if s.recipes[i].ID == resp.Recipe.ID {
			s.recipes[i] = resp.Recipe
		}
	}
	s.recipe = &resp.Recipe
	s.mu.Unlock()
	return &resp.Recipe, nil
}

// Delete removes the recipe server-side, filters it out of the cached
// list and empties the single-item cache when it held that id.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.begin()
	err := s.client.Delete(ctx, fmt.Sprintf("/recipes/%d", id), nil)
	s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.recipes[:0]
	for _, r := range s.recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.recipes = kept
	if s.recipe != nil && s.recipe.ID == id {
		s.recipe = nil
	}
	s.mu.Unlock()
	return nil
}

// Like, Unlike, Save and Unsave are fire-and-forget: they mutate server
// state without touching the cached derived flags. Callers re-fetch
// when they need the updated status.

func (s *Store) Like(ctx context.Context, id int) error {
	return s.toggle(ctx, id, "like")
}

func (s *Store) Unlike(ctx context.Context, id int) error {
	return s.toggle(ctx, id, "unlike")
}

func (s *Store) Save(ctx context.Context, id int) error {
	return s.toggle(ctx, id, "save")
}

func (s *Store) Unsave(ctx context.Context, id int) error {
	return s.toggle(ctx, id, "unsave")
}

func (s *Store) toggle(ctx context.Context, id int, action string) error {
	err := s.client.Post(ctx, fmt.Sprintf("/recipes/%d/%s", id, action), struct{}{}, nil)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
	}
	return err
}

// Status fetches the viewer's liked/saved flags for a recipe.
func (s *Store) Status(ctx context.Context, id int) (*models.RecipeStatus, error) {
	var status models.RecipeStatus
	if err := s.client.Get(ctx, fmt.Sprintf("/recipes/%d/getStatus", id), &status); err != nil {
		return nil, err
	}
	return &status, nil
}
