package models

import (
	"encoding/json"
	"testing"
)

func TestRecipeParsesServerSerializedFields(t *testing.T) {
	tests := []struct {
		name            string
		payload         string
		wantIngredients []string
		wantSteps       []string
		wantCalories    string
	}{
		{
			name: "fields arrive as JSON strings",
			payload: `{
				"id": 1,
				"ingredients": "[\"200g spaghetti\",\"100g guanciale\"]",
				"steps": "[\"Boil the pasta\"]",
				"nutrition": "{\"calories\":\"650\"}"
			}`,
			wantIngredients: []string{"200g spaghetti", "100g guanciale"},
			wantSteps:       []string{"Boil the pasta"},
			wantCalories:    "650",
		},
		{
			name: "fields arrive as plain JSON values",
			payload: `{
				"id": 1,
				"ingredients": ["200g spaghetti"],
				"steps": ["Boil the pasta"],
				"nutrition": {"calories":"650"}
			}`,
			wantIngredients: []string{"200g spaghetti"},
			wantSteps:       []string{"Boil the pasta"},
			wantCalories:    "650",
		},
		{
			name:            "null fields parse to nothing",
			payload:         `{"id":1,"ingredients":null,"steps":null,"nutrition":null}`,
			wantIngredients: nil,
			wantSteps:       nil,
			wantCalories:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recipe Recipe
			if err := json.Unmarshal([]byte(tt.payload), &recipe); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}

			ingredients := recipe.IngredientList()
			if len(ingredients) != len(tt.wantIngredients) {
				t.Fatalf("Expected %v ingredients, got %v", tt.wantIngredients, ingredients)
			}
			for i, want := range tt.wantIngredients {
				if ingredients[i] != want {
					t.Errorf("Ingredient %d: expected %q, got %q", i, want, ingredients[i])
				}
			}

			steps := recipe.StepList()
			if len(steps) != len(tt.wantSteps) {
				t.Fatalf("Expected %v steps, got %v", tt.wantSteps, steps)
			}

			if got := recipe.NutritionFacts()["calories"]; got != tt.wantCalories {
				t.Errorf("Expected calories %q, got %q", tt.wantCalories, got)
			}
		})
	}
}

func TestStepListFallsBackToInstructions(t *testing.T) {
	payload := `{"id":1,"instructions":"[\"Old style step\"]"}`
	var recipe Recipe
	if err := json.Unmarshal([]byte(payload), &recipe); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	steps := recipe.StepList()
	if len(steps) != 1 || steps[0] != "Old style step" {
		t.Errorf("Expected fallback to instructions, got %v", steps)
	}
}
