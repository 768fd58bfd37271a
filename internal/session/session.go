package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
	"github.com/Sreehari2710/recipie-frontend/internal/models"
)

// State describes where the session is in its lifecycle.
type State int

const (
	// StateUnknown means the stored token has not been probed yet.
	StateUnknown State = iota
	// StateAnonymous means no valid credential is held.
	StateAnonymous
	// StateAuthenticated means the token was accepted and a user is cached.
	StateAuthenticated
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name                 string `json:"name"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Store owns the authentication lifecycle: it probes the persisted
// token on startup, installs credentials on the API client after
// login/register and clears everything on logout.
type Store struct {
	client *api.Client
	tokens *TokenStore

	mu    sync.RWMutex
	state State
	user  *models.User
}

func New(client *api.Client, tokens *TokenStore) *Store {
	return &Store{
		client: client,
		tokens: tokens,
		state:  StateUnknown,
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the cached authenticated user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Probe resolves StateUnknown by checking the persisted token against
// /auth/me. A rejected stored token is cleared here and only here:
// authenticated-call failures after the probe leave the token alone.
func (s *Store) Probe(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		s.setAnonymous()
		return nil
	}

	s.client.SetToken(token)
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Get(ctx, "/auth/me", &resp); err != nil {
		slog.Debug("Stored token rejected, clearing it", "err", err)
		s.client.SetToken("")
		if clearErr := s.tokens.Clear(); clearErr != nil {
			slog.Warn("Unable to clear stored token", "err", clearErr)
		}
		s.setAnonymous()
		return nil
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &resp.User
	s.mu.Unlock()
	return nil
}

// Login authenticates with email and password, persisting the returned
// token on success. Errors are returned for caller-level handling of
// field validation.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := s.client.Post(ctx, "/auth/login", body, &resp); err != nil {
		slog.Error("Login failed", "err", err)
		return nil, err
	}
	if err := s.install(resp); err != nil {
		return nil, err
	}
	return s.User(), nil
}

// Register creates an account and signs in with the returned token.
func (s *Store) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var resp authResponse
	if err := s.client.Post(ctx, "/auth/register", input, &resp); err != nil {
		slog.Error("Registration failed", "err", err)
		return nil, err
	}
	if err := s.install(resp); err != nil {
		return nil, err
	}
	return s.User(), nil
}

// Logout best-effort notifies the server, then unconditionally clears
// the persisted token and cached user.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Post(ctx, "/auth/logout", struct{}{}, nil); err != nil {
		slog.Warn("Logout call failed, clearing session anyway", "err", err)
	}
	s.client.SetToken("")
	err := s.tokens.Clear()
	s.setAnonymous()
	return err
}

func (s *Store) install(resp authResponse) error {
	if err := s.tokens.Save(resp.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	s.client.SetToken(resp.Token)
	s.mu.Lock()
	s.state = StateAuthenticated
	user := resp.User
	s.user = &user
	s.mu.Unlock()
	return nil
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
}
