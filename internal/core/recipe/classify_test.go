package recipe

import (
	"testing"

	"recipe-engine/internal/pkg/common"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		cores        []string
		wantKind     common.DishKind
		wantCategory common.CookingCategory
	}{
		{
			name:         "pbj",
			cores:        []string{"bread", "peanut butter", "jelly"},
			wantKind:     common.KindPBJ,
			wantCategory: common.CategoryAssembly,
		},
		{
			name:         "grilled cheese",
			cores:        []string{"bread", "cheese", "butter"},
			wantKind:     common.KindSandwich,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "nut butter is not a cooking fat",
			cores:        []string{"bread", "cheese", "peanut butter"},
			wantKind:     common.KindSandwich,
			wantCategory: common.CategorySimple,
		},
		{
			name:         "eggs",
			cores:        []string{"eggs", "spinach"},
			wantKind:     common.KindBreakfast,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "eggs win over pasta",
			cores:        []string{"pasta", "eggs"},
			wantKind:     common.KindBreakfast,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "pasta",
			cores:        []string{"spaghetti", "tomato"},
			wantKind:     common.KindPasta,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "pasta wins over rice",
			cores:        []string{"rice", "noodles"},
			wantKind:     common.KindPasta,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "rice bowl",
			cores:        []string{"chicken", "rice", "broccoli"},
			wantKind:     common.KindRiceBowl,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "quinoa counts as rice base",
			cores:        []string{"quinoa", "chickpeas"},
			wantKind:     common.KindRiceBowl,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "salad",
			cores:        []string{"spinach", "chicken"},
			wantKind:     common.KindSalad,
			wantCategory: common.CategorySimple,
		},
		{
			name:         "leafy alone is not a salad",
			cores:        []string{"lettuce"},
			wantKind:     common.KindGeneric,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "smoothie",
			cores:        []string{"banana", "milk"},
			wantKind:     common.KindSmoothie,
			wantCategory: common.CategorySimple,
		},
		{
			name:         "bare bread sandwich",
			cores:        []string{"bread", "tomato"},
			wantKind:     common.KindSandwich,
			wantCategory: common.CategorySimple,
		},
		{
			name:         "entree without base",
			cores:        []string{"salmon", "broccoli"},
			wantKind:     common.KindEntree,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "protein with potato falls to generic cooked",
			cores:        []string{"chicken", "potato"},
			wantKind:     common.KindGeneric,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "vegetable only is generic cooked",
			cores:        []string{"broccoli"},
			wantKind:     common.KindGeneric,
			wantCategory: common.CategoryCooked,
		},
		{
			name:         "unknown items are generic simple",
			cores:        []string{"flour", "sugar"},
			wantKind:     common.KindGeneric,
			wantCategory: common.CategorySimple,
		},
		{
			name:         "empty input is generic simple",
			cores:        nil,
			wantKind:     common.KindGeneric,
			wantCategory: common.CategorySimple,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.cores)
			if got.Kind != tt.wantKind || got.Category != tt.wantCategory {
				t.Errorf("Classify(%v) = {%s %s}, want {%s %s}",
					tt.cores, got.Category, got.Kind, tt.wantCategory, tt.wantKind)
			}
		})
	}
}

func TestVocabularyWordBoundary(t *testing.T) {
	// "rice" 不能命中 "licorice" 這種子字串
	if riceVocab.matches("licorice") {
		t.Error("rice vocabulary matched inside licorice")
	}
	if !riceVocab.matches("brown rice") {
		t.Error("rice vocabulary missed brown rice")
	}
}

func TestVocabularyFirstInUsesInputOrder(t *testing.T) {
	// 平手時以呼叫端輸入順序為準
	if got := vegetableVocab.firstIn([]string{"broccoli", "spinach"}); got != "broccoli" {
		t.Errorf("firstIn = %q, want broccoli", got)
	}
	if got := vegetableVocab.firstIn([]string{"spinach", "broccoli"}); got != "spinach" {
		t.Errorf("firstIn = %q, want spinach", got)
	}
}
