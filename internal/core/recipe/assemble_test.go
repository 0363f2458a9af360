package recipe

import (
	"reflect"
	"strings"
	"testing"

	"recipe-engine/internal/pkg/common"
)

func buildDeterministic(t *testing.T, raw []string) *common.Recipe {
	t.Helper()
	phrases := ParseIngredientList(raw)
	cores := NormalizeAll(phrases)
	r, err := Assemble(phrases, cores, Classify(cores), "None", 30)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return r
}

func TestAssembleEmptyIngredients(t *testing.T) {
	_, err := Assemble(nil, nil, Classify(nil), "None", 30)
	if err == nil {
		t.Fatal("expected error for zero ingredients")
	}
	if !common.IsValidationError(err) {
		t.Errorf("expected validation error, got %T: %v", err, err)
	}
}

func TestAssemblePBJ(t *testing.T) {
	r := buildDeterministic(t, []string{"bread", "peanut butter", "jelly"})

	if r.Title != "PB&J Sandwich" {
		t.Errorf("title = %q, want PB&J Sandwich", r.Title)
	}
	wantIngredients := []string{"2 slices bread", "2 tbsp peanut butter", "1–2 tbsp jelly"}
	if !reflect.DeepEqual(r.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %v, want %v", r.Ingredients, wantIngredients)
	}
	// assembly 類絕不補調味料
	for _, line := range r.Ingredients {
		if line == "salt" || line == "black pepper" || line == "olive oil" {
			t.Errorf("staple %q leaked into assembly recipe", line)
		}
	}
	if len(r.Steps) != 4 {
		t.Errorf("steps = %d, want 4", len(r.Steps))
	}
	for _, step := range r.Steps {
		lower := strings.ToLower(step)
		if strings.Contains(lower, "heat") || strings.Contains(lower, "cook") {
			t.Errorf("no-heat dish got a cooking step: %q", step)
		}
	}
	if r.Meta.Category != common.CategoryAssembly {
		t.Errorf("category = %s, want assembly", r.Meta.Category)
	}
}

func TestAssembleCookedAddsMissingStaples(t *testing.T) {
	r := buildDeterministic(t, []string{"chicken breast", "rice", "broccoli"})

	wantIngredients := []string{
		"6–8 oz chicken breast",
		"1 cup rice",
		"1–2 cups broccoli",
		"salt",
		"black pepper",
		"olive oil",
	}
	if !reflect.DeepEqual(r.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %v, want %v", r.Ingredients, wantIngredients)
	}
	if r.Meta.Category != common.CategoryCooked {
		t.Errorf("category = %s, want cooked", r.Meta.Category)
	}
}

func TestAssembleStaplesNotDuplicated(t *testing.T) {
	// "Sea Salt" 已含鹽，不能再補一行 salt
	r := buildDeterministic(t, []string{"chicken breast", "rice", "Sea Salt", "olive oil"})

	saltLines := 0
	for _, line := range r.Ingredients {
		if strings.Contains(strings.ToLower(line), "salt") {
			saltLines++
		}
	}
	if saltLines != 1 {
		t.Errorf("got %d salt lines, want 1: %v", saltLines, r.Ingredients)
	}

	oilLines := 0
	for _, line := range r.Ingredients {
		if strings.Contains(strings.ToLower(line), "oil") {
			oilLines++
		}
	}
	if oilLines != 1 {
		t.Errorf("got %d oil lines, want 1: %v", oilLines, r.Ingredients)
	}

	// 沒有的 staple 還是要補
	if r.Ingredients[len(r.Ingredients)-1] != "black pepper" {
		t.Errorf("missing black pepper staple: %v", r.Ingredients)
	}
}

func TestAssembleSimpleNoStaples(t *testing.T) {
	r := buildDeterministic(t, []string{"banana", "milk"})

	wantIngredients := []string{"1 banana, sliced", "1 cup milk"}
	if !reflect.DeepEqual(r.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %v, want %v", r.Ingredients, wantIngredients)
	}
	if r.Title != "Banana Smoothie" {
		t.Errorf("title = %q, want Banana Smoothie", r.Title)
	}
}

func TestCookedQuantityLine(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"eggs", "2–3 eggs"},
		{"chicken breast", "6–8 oz chicken breast"},
		{"rice", "1 cup rice"},
		{"pasta", "1 cup pasta"},
		{"broccoli", "1–2 cups broccoli"},
		{"cheddar cheese", "1/2 cup cheddar cheese"},
		{"butter", "1 tbsp butter"},
		{"bread", "2 slices bread"},
		{"soy sauce", "soy sauce, to taste"},
		// 呼叫端已寫份量就不動
		{"2 cups rice", "2 cups rice"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := cookedQuantityLine(tt.raw, Normalize(tt.raw)); got != tt.want {
				t.Errorf("cookedQuantityLine(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAssembleRiceBowlSteps(t *testing.T) {
	r := buildDeterministic(t, []string{"chicken", "rice", "broccoli"})

	joined := strings.Join(r.Steps, "\n")
	for _, want := range []string{"rice", "chicken", "tender-crisp", "Serve"} {
		if !strings.Contains(joined, want) {
			t.Errorf("steps missing %q:\n%s", want, joined)
		}
	}
	if len(r.Steps) != 4 {
		t.Errorf("steps = %d, want 4", len(r.Steps))
	}
}
