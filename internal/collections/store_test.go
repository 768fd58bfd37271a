package collections

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sreehari2710/recipie-frontend/internal/api"
)

type call struct {
	method string
	path   string
}

func newTestStore(t *testing.T, responses map[call]string) (*Store, *[]call) {
	t.Helper()
	var calls []call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := call{r.Method, r.URL.RequestURI()}
		calls = append(calls, key)
		body, ok := responses[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not found"}`))
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return New(api.New(server.URL)), &calls
}

func TestFetchUnwrapsPagination(t *testing.T) {
	store, _ := newTestStore(t, map[call]string{
		{"GET", "/collections"}: `{"collections":{"data":[{"id":1,"name":"Weeknight"},{"id":2,"name":"Desserts"}],"total":2}}`,
	})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	list := store.Collections()
	if len(list) != 2 || list[0].Name != "Weeknight" {
		t.Errorf("Unexpected list: %+v", list)
	}
}

func TestCreatePrepends(t *testing.T) {
	store, _ := newTestStore(t, map[call]string{
		{"GET", "/collections"}:  `{"collections":{"data":[{"id":1,"name":"Weeknight"}],"total":1}}`,
		{"POST", "/collections"}: `{"collection":{"id":7,"name":"Breakfast"}}`,
	})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	created, err := store.Create(context.Background(), api.NewForm().Set("name", "Breakfast"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("Expected server id 7, got %d", created.ID)
	}
	list := store.Collections()
	if len(list) != 2 || list[0].ID != 7 {
		t.Errorf("Expected new collection prepended, got %+v", list)
	}
}

func TestDeleteReconcilesCaches(t *testing.T) {
	store, _ := newTestStore(t, map[call]string{
		{"GET", "/collections"}:      `{"collections":{"data":[{"id":1,"name":"Weeknight"},{"id":2,"name":"Desserts"}],"total":2}}`,
		{"GET", "/collections/2"}:    `{"collection":{"id":2,"name":"Desserts"}}`,
		{"DELETE", "/collections/2"}: `{}`,
	})

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if _, err := store.FetchOne(context.Background(), 2); err != nil {
		t.Fatalf("FetchOne failed: %v", err)
	}
	if err := store.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	for _, c := range store.Collections() {
		if c.ID == 2 {
			t.Error("Deleted collection still in list")
		}
	}
	if store.Collection() != nil {
		t.Errorf("Expected single cache cleared, got %+v", store.Collection())
	}
}

func TestMembershipJoinCalls(t *testing.T) {
	store, calls := newTestStore(t, map[call]string{
		{"POST", "/collections/3/recipes"}:     `{}`,
		{"DELETE", "/collections/3/recipes/9"}: `{}`,
		{"GET", "/collections/3/recipes"}:      `{"recipes":[{"id":9,"title":"Dal"}]}`,
	})

	ctx := context.Background()
	if err := store.AddRecipe(ctx, 3, 9); err != nil {
		t.Fatalf("AddRecipe failed: %v", err)
	}
	recipes, err := store.FetchRecipes(ctx, 3)
	if err != nil {
		t.Fatalf("FetchRecipes failed: %v", err)
	}
	if len(recipes) != 1 || recipes[0].ID != 9 {
		t.Errorf("Unexpected membership listing: %+v", recipes)
	}
	if err := store.RemoveRecipe(ctx, 3, 9); err != nil {
		t.Fatalf("RemoveRecipe failed: %v", err)
	}

	expected := []call{
		{"POST", "/collections/3/recipes"},
		{"GET", "/collections/3/recipes"},
		{"DELETE", "/collections/3/recipes/9"},
	}
	if len(*calls) != len(expected) {
		t.Fatalf("Expected %d calls, got %d", len(expected), len(*calls))
	}
	for i, want := range expected {
		if (*calls)[i] != want {
			t.Errorf("Call %d: expected %v, got %v", i, want, (*calls)[i])
		}
	}
}

func TestUpdateUsesMethodOverrideRoute(t *testing.T) {
	var gotOverride string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOverride = r.Header.Get("X-HTTP-Method-Override")
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST carrier verb, got %s", r.Method)
		}
		w.Write([]byte(`{"collection":{"id":3,"name":"Renamed"}}`))
	}))
	t.Cleanup(server.Close)
	store := New(api.New(server.URL))

	updated, err := store.Update(context.Background(), 3, api.NewForm().Set("name", "Renamed"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if gotOverride != "PUT" {
		t.Errorf("Expected PUT override header, got %q", gotOverride)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Unexpected result: %+v", updated)
	}
	if store.Collection() == nil || store.Collection().Name != "Renamed" {
		t.Errorf("Expected single cache refreshed, got %+v", store.Collection())
	}
}
