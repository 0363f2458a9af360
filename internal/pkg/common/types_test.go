package common

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"array form", `["chicken","rice"]`, []string{"chicken", "rice"}},
		{"comma string form", `"chicken, rice , broccoli"`, []string{"chicken", "rice", "broccoli"}},
		{"single item string", `"eggs"`, []string{"eggs"}},
		{"empty segments dropped", `"a,, ,b"`, []string{"a", "b"}},
		{"null", `null`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Errorf("StringList = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringListInsideRequest(t *testing.T) {
	var req GenerateRecipeRequest
	payload := `{"ingredients":"bread, peanut butter, jelly","diet":"None","time_minutes":10}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := StringList{"bread", "peanut butter", "jelly"}
	if !reflect.DeepEqual(req.Ingredients, want) {
		t.Errorf("ingredients = %v, want %v", req.Ingredients, want)
	}
}

func TestRenderRecipeText(t *testing.T) {
	r := &Recipe{
		Title:       "Chicken Rice Bowl",
		Ingredients: []string{"6–8 oz chicken", "1 cup rice"},
		Steps:       []string{"Cook the rice.", "Cook the chicken."},
		Meta:        RecipeMeta{Diet: "None", TimeMinutes: 30},
	}
	text := RenderRecipeText(r)

	if !strings.HasPrefix(text, "Chicken Rice Bowl\n") {
		t.Errorf("text should start with title:\n%s", text)
	}
	for _, want := range []string{
		"Diet: None",
		"Time: 30 min",
		"- 6–8 oz chicken",
		"- 1 cup rice",
		"1. Cook the rice.",
		"2. Cook the chicken.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}

func TestRenderRecipeTextNil(t *testing.T) {
	if got := RenderRecipeText(nil); got != "" {
		t.Errorf("RenderRecipeText(nil) = %q, want empty", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"chicken", "Chicken"},
		{"peanut butter", "Peanut Butter"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
