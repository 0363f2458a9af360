package recipe

import (
	"strings"

	"recipe-engine/internal/pkg/common"
)

// SynthesizeTitle 從分類結果與偵測到的蛋白質/蔬菜/主食錨點組出標題
// 詞彙命中以呼叫端輸入順序為準，保證同樣輸入永遠得到同樣標題
func SynthesizeTitle(cores []string, rawPhrases []string, cls Classification) string {
	switch cls.Kind {
	case common.KindPBJ:
		return "PB&J Sandwich"

	case common.KindSandwich:
		// 規則 2（麵包+起司+油脂）分類成 cooked sandwich，就是 grilled cheese
		if cls.Category == common.CategoryCooked {
			return "Grilled Cheese"
		}
		return sandwichTitle(cores)

	case common.KindBreakfast:
		return breakfastTitle(cores)

	case common.KindPasta:
		return baseDishTitle(cores, "Pasta")

	case common.KindRiceBowl:
		return baseDishTitle(cores, "Rice Bowl")

	case common.KindSalad:
		return saladTitle(cores)

	case common.KindSmoothie:
		if fruit := firstFruit(cores); fruit != "" {
			return common.TitleCase(fruit) + " Smoothie"
		}
		return "Fruit Smoothie"

	default:
		return anchorTitle(cores, rawPhrases)
	}
}

// baseDishTitle 產生 "{Protein} {Vegetable} Pasta / Rice Bowl" 形式的標題
// 兩個槽位都空時退回 "Simple {suffix}"
func baseDishTitle(cores []string, suffix string) string {
	parts := make([]string, 0, 3)
	if protein := firstProtein(cores); protein != "" {
		parts = append(parts, common.TitleCase(protein))
	}
	if veg := firstVegetable(cores); veg != "" {
		parts = append(parts, common.TitleCase(veg))
	}
	if len(parts) == 0 {
		return "Simple " + suffix
	}
	return strings.Join(parts, " ") + " " + suffix
}

// sandwichTitle 無蛋白質時退回 "Simple Sandwich"
func sandwichTitle(cores []string) string {
	protein := firstProtein(cores)
	if protein == "" {
		return "Simple Sandwich"
	}
	parts := []string{common.TitleCase(protein)}
	if cheeseVocab.anyIn(cores) {
		parts = append(parts, "Cheese")
	}
	if veg := firstVegetable(cores); veg != "" {
		parts = append(parts, common.TitleCase(veg))
	}
	return strings.Join(parts, " ") + " Sandwich"
}

func breakfastTitle(cores []string) string {
	hasVeg := vegetableVocab.anyIn(cores)
	hasCheese := cheeseVocab.anyIn(cores)
	switch {
	case hasVeg && hasCheese:
		return "Veggie Cheese Omelet"
	case hasVeg:
		return "Veggie Omelet"
	case hasCheese:
		return "Cheese Omelet"
	default:
		return "Scrambled Eggs"
	}
}

func saladTitle(cores []string) string {
	leafy := firstLeafy(cores)
	if leafy == "" {
		return "Garden Salad"
	}
	if protein := firstProtein(cores); protein != "" {
		return common.TitleCase(protein) + " " + common.TitleCase(leafy) + " Salad"
	}
	return common.TitleCase(leafy) + " Salad"
}

// anchorTitle 依蛋白質、蔬菜、主食的優先序各取一個錨點接 "Bowl"
// 全部落空時用前三個原始片語組標題，連輸入都沒有就是 "Quick Recipe"
func anchorTitle(cores []string, rawPhrases []string) string {
	parts := make([]string, 0, 3)
	if protein := firstProtein(cores); protein != "" {
		parts = append(parts, common.TitleCase(protein))
	}
	if veg := firstVegetable(cores); veg != "" {
		parts = append(parts, common.TitleCase(veg))
	}
	if carb := firstCarb(cores); carb != "" {
		parts = append(parts, common.TitleCase(carb))
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ") + " Bowl"
	}

	fallback := make([]string, 0, 3)
	for _, raw := range rawPhrases {
		if cleaned := CleanPhrase(raw); cleaned != "" {
			fallback = append(fallback, common.TitleCase(strings.ToLower(cleaned)))
		}
		if len(fallback) == 3 {
			break
		}
	}
	if len(fallback) > 0 {
		return strings.Join(fallback, " ")
	}
	return "Quick Recipe"
}
