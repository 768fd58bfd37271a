package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
)

func newTestStore(t *testing.T, handler http.Handler) (*Store, *api.Client, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokenPath := filepath.Join(t.TempDir(), "auth_token")
	client := api.New(server.URL)
	return New(client, NewTokenStore(tokenPath)), client, tokenPath
}

func writeToken(t *testing.T, path, token string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		t.Fatalf("Failed to seed token file: %v", err)
	}
}

func TestTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "auth_token")
	store := NewTokenStore(path)

	token, err := store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("Expected empty token before save, got %q", token)
	}

	if err := store.Save("T"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	token, err = store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "T" {
		t.Errorf("Expected %q, got %q", "T", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clearing a missing token should not error, got %v", err)
	}
}

func TestLoginPersistsTokenAndUser(t *testing.T) {
	store, client, tokenPath := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"user":{"id":1,"name":"Ada","username":"ada","email":"a@b.com"},"token":"T"}`))
	}))

	user, err := store.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("Expected user ada, got %q", user.Username)
	}
	if store.State() != StateAuthenticated {
		t.Errorf("Expected authenticated state, got %v", store.State())
	}
	if client.Token() != "T" {
		t.Errorf("Expected token installed on client, got %q", client.Token())
	}
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		t.Fatalf("Token file not written: %v", err)
	}
	if string(data) != "T" {
		t.Errorf("Expected persisted token %q, got %q", "T", string(data))
	}
}

func TestLoginFailureSurfacesFieldErrors(t *testing.T) {
	store, client, tokenPath := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Invalid credentials","errors":{"email":["No account for this email"]}}`))
	}))

	_, err := store.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("Expected an error")
	}
	apiErr, ok := err.(*api.Error)
	if !ok {
		t.Fatalf("Expected *api.Error, got %T", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", apiErr.Status)
	}
	if len(apiErr.FieldErrors()["email"]) != 1 {
		t.Errorf("Expected email field error, got %v", apiErr.Errors)
	}
	if client.Token() != "" {
		t.Errorf("Token must not be installed after failed login")
	}
	if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
		t.Errorf("Token file must not exist after failed login")
	}
}

func TestProbe(t *testing.T) {
	t.Run("no stored token resolves anonymous without a request", func(t *testing.T) {
		store, _, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("No request expected")
		}))
		if err := store.Probe(context.Background()); err != nil {
			t.Fatalf("Probe failed: %v", err)
		}
		if store.State() != StateAnonymous {
			t.Errorf("Expected anonymous state, got %v", store.State())
		}
	})

	t.Run("valid stored token resolves authenticated", func(t *testing.T) {
		store, client, tokenPath := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer T" {
				t.Errorf("Expected stored token on probe, got %q", r.Header.Get("Authorization"))
			}
			w.Write([]byte(`{"user":{"id":1,"name":"Ada","username":"ada"}}`))
		}))
		writeToken(t, tokenPath, "T")

		if err := store.Probe(context.Background()); err != nil {
			t.Fatalf("Probe failed: %v", err)
		}
		if store.State() != StateAuthenticated {
			t.Errorf("Expected authenticated state, got %v", store.State())
		}
		if store.User() == nil || store.User().Username != "ada" {
			t.Errorf("Expected cached user, got %+v", store.User())
		}
		if client.Token() != "T" {
			t.Errorf("Expected token kept on client, got %q", client.Token())
		}
	})

	t.Run("rejected stored token is cleared", func(t *testing.T) {
		store, client, tokenPath := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthenticated"}`))
		}))
		writeToken(t, tokenPath, "expired")

		if err := store.Probe(context.Background()); err != nil {
			t.Fatalf("Probe failed: %v", err)
		}
		if store.State() != StateAnonymous {
			t.Errorf("Expected anonymous state, got %v", store.State())
		}
		if client.Token() != "" {
			t.Errorf("Expected client token cleared, got %q", client.Token())
		}
		if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
			t.Error("Expected persisted token removed after rejected probe")
		}
	})
}

// A 401 on an authenticated call after a successful probe must leave the
// persisted token alone; only the initial probe clears it.
func TestLaterRejectionKeepsStoredToken(t *testing.T) {
	probed := false
	store, client, tokenPath := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !probed {
			probed = true
			w.Write([]byte(`{"user":{"id":1,"name":"Ada","username":"ada"}}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated"}`))
	}))
	writeToken(t, tokenPath, "T")

	if err := store.Probe(context.Background()); err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	err := client.Get(context.Background(), "/recipes", nil)
	if err == nil {
		t.Fatal("Expected the later call to fail")
	}
	if client.Token() != "T" {
		t.Errorf("Client token must survive later rejections, got %q", client.Token())
	}
	data, readErr := os.ReadFile(tokenPath)
	if readErr != nil || string(data) != "T" {
		t.Errorf("Persisted token must survive later rejections, got %q, err %v", string(data), readErr)
	}
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name         string
		serverStatus int
	}{
		{name: "server acknowledges", serverStatus: http.StatusOK},
		{name: "server failure still clears session", serverStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, client, tokenPath := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/auth/me" {
					w.Write([]byte(`{"user":{"id":1,"name":"Ada","username":"ada"}}`))
					return
				}
				w.WriteHeader(tt.serverStatus)
				w.Write([]byte(`{}`))
			}))
			writeToken(t, tokenPath, "T")

			if err := store.Probe(context.Background()); err != nil {
				t.Fatalf("Probe failed: %v", err)
			}
			if err := store.Logout(context.Background()); err != nil {
				t.Fatalf("Logout failed: %v", err)
			}
			if store.State() != StateAnonymous {
				t.Errorf("Expected anonymous state, got %v", store.State())
			}
			if client.Token() != "" {
				t.Errorf("Expected client token cleared, got %q", client.Token())
			}
			if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
				t.Error("Expected persisted token removed on logout")
			}
		})
	}
}
