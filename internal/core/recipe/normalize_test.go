package recipe

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "chicken", "chicken"},
		{"uppercase", "Chicken Breast", "chicken breast"},
		{"quantity and unit", "2 slices bread", "bread"},
		{"fraction quantity", "1/2 cup yogurt", "yogurt"},
		{"mixed number quantity", "1 1/2 cups milk", "milk"},
		{"range quantity", "6-8 oz chicken breast", "chicken breast"},
		{"en dash range", "1–2 tbsp jelly", "jelly"},
		{"decimal quantity", "0.5 kg rice", "rice"},
		{"unit without quantity kept", "cup of flour", "cup of flour"},
		{"quantity then of", "2 cups of rice", "rice"},
		{"bullet prefix", "- olive oil", "olive oil"},
		{"parenthetical note", "chicken breast (boneless, skinless)", "chicken breast"},
		{"unmatched paren truncates", "chicken (raw", "chicken"},
		{"comma truncates", "parmesan, grated", "parmesan"},
		{"quantity unit comma", "1/2 cup Parmesan, grated", "parmesan"},
		{"to taste removed", "salt to taste", "salt"},
		{"optional removed", "cilantro optional", "cilantro"},
		{"as needed removed", "water as needed", "water"},
		{"punctuation stripped", "soy sauce!", "soy sauce"},
		{"internal hyphen kept", "stir-fry mix", "stir-fry mix"},
		{"whitespace collapsed", "  baby   spinach  ", "baby spinach"},
		{"empty", "", ""},
		{"only quantity", "2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"2 slices bread",
		"1/2 cup Parmesan, grated",
		"chicken breast (boneless)",
		"- olive oil",
		"Salt, to taste",
		"1 1/2 cups milk",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanPhrase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"- Fresh Basil ", "Fresh Basil"},
		{"  two   spaces ", "two spaces"},
		{"• Olive Oil,", "Olive Oil"},
		{"2 slices bread", "2 slices bread"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanPhrase(tt.input); got != tt.want {
			t.Errorf("CleanPhrase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseIngredientList(t *testing.T) {
	got := ParseIngredientList([]string{" chicken ", "chicken", "", "   ", "Rice (cooked)", "broccoli"})
	want := []string{"chicken", "Rice", "broccoli"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseIngredientList = %v, want %v", got, want)
	}
}

func TestNormalizeAllDropsEmpty(t *testing.T) {
	got := NormalizeAll([]string{"2 slices bread", "", "2", "Peanut Butter"})
	want := []string{"bread", "peanut butter"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAll = %v, want %v", got, want)
	}
}
