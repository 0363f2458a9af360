package recipe

import (
	"regexp"
	"strings"

	"recipe-engine/internal/pkg/common"
)

// vocabulary 固定詞彙表，用字界比對 core name，不做模糊比對
type vocabulary struct {
	re *regexp.Regexp
}

func newVocabulary(terms ...string) vocabulary {
	escaped := make([]string, len(terms))
	for i, t := range terms {
		escaped[i] = regexp.QuoteMeta(t)
	}
	return vocabulary{re: regexp.MustCompile(`\b(?:` + strings.Join(escaped, "|") + `)\b`)}
}

func (v vocabulary) matches(core string) bool {
	return v.re.MatchString(core)
}

// find 回傳 core 中第一個命中的詞彙字，沒有則回空字串
func (v vocabulary) find(core string) string {
	return v.re.FindString(core)
}

// firstIn 依呼叫端輸入順序掃描，回傳第一個命中的詞彙字
// 平手時以輸入順序為準，不是詞彙表順序
func (v vocabulary) firstIn(cores []string) string {
	for _, core := range cores {
		if m := v.find(core); m != "" {
			return m
		}
	}
	return ""
}

func (v vocabulary) anyIn(cores []string) bool {
	for _, core := range cores {
		if v.matches(core) {
			return true
		}
	}
	return false
}

// 固定詞彙表
var (
	breadVocab      = newVocabulary("bread", "bun", "roll", "bagel", "tortilla", "wrap", "pita")
	nutButterVocab  = newVocabulary("peanut butter", "almond butter", "cashew butter", "sunflower butter", "nut butter")
	jellyVocab      = newVocabulary("jelly", "jam", "preserves")
	cheeseVocab     = newVocabulary("cheese")
	butterFatVocab  = newVocabulary("butter", "oil")
	eggVocab        = newVocabulary("egg", "eggs")
	pastaVocab      = newVocabulary("pasta", "noodle", "noodles", "spaghetti", "penne", "macaroni", "ramen")
	riceVocab       = newVocabulary("rice", "quinoa", "couscous")
	leafyVocab      = newVocabulary("lettuce", "spinach", "kale", "arugula", "greens")
	legumeVocab     = newVocabulary("beans", "lentils", "chickpeas")
	meatVocab       = newVocabulary("chicken", "turkey", "beef", "pork", "salmon", "tuna", "shrimp", "ham", "bacon", "steak")
	fruitVocab      = newVocabulary("banana", "strawberry", "strawberries", "blueberry", "blueberries", "raspberry", "raspberries", "mango", "apple", "peach", "pineapple", "berries")
	dairyDrinkVocab = newVocabulary("milk", "yogurt", "kefir")
	proteinVocab    = newVocabulary("chicken", "turkey", "beef", "pork", "salmon", "tuna", "shrimp", "tofu", "tempeh", "beans", "lentils", "egg", "eggs")
	vegetableVocab  = newVocabulary("broccoli", "spinach", "kale", "lettuce", "pepper", "peppers", "onion", "garlic", "tomato", "carrot", "zucchini", "cucumber", "mushroom", "mushrooms")
	carbVocab       = newVocabulary("rice", "quinoa", "oats", "potato", "potatoes")
)

// Classification 分類結果：粗粒度烹調類別加上較細的料理種類
type Classification struct {
	Category common.CookingCategory
	Kind     common.DishKind
}

// hasPlainButterFat 檢查是否有 butter 或 oil，排除 nut butter 誤判
// "peanut butter" 的 butter 不能算進 grilled cheese 的油脂
func hasPlainButterFat(cores []string) bool {
	for _, core := range cores {
		if butterFatVocab.matches(core) && !nutButterVocab.matches(core) {
			return true
		}
	}
	return false
}

// hasBase 檢查是否有主食類（飯、麵、麵包、薯類）
func hasBase(cores []string) bool {
	return riceVocab.anyIn(cores) || pastaVocab.anyIn(cores) ||
		breadVocab.anyIn(cores) || carbVocab.anyIn(cores)
}

// classifierRule 分類規則：由上往下逐條評估，第一條命中即定案
type classifierRule struct {
	name     string
	match    func(cores []string) bool
	kind     common.DishKind
	category common.CookingCategory
}

// 規則表順序即優先序，調整時注意先後關係
var classifierRules = []classifierRule{
	{
		name: "pbj",
		match: func(cores []string) bool {
			return breadVocab.anyIn(cores) && nutButterVocab.anyIn(cores) && jellyVocab.anyIn(cores)
		},
		kind:     common.KindPBJ,
		category: common.CategoryAssembly,
	},
	{
		name: "grilled_cheese",
		match: func(cores []string) bool {
			return breadVocab.anyIn(cores) && cheeseVocab.anyIn(cores) && hasPlainButterFat(cores)
		},
		kind:     common.KindSandwich,
		category: common.CategoryCooked,
	},
	{
		name: "eggs",
		match: func(cores []string) bool {
			return eggVocab.anyIn(cores)
		},
		kind:     common.KindBreakfast,
		category: common.CategoryCooked,
	},
	{
		name: "pasta",
		match: func(cores []string) bool {
			return pastaVocab.anyIn(cores)
		},
		kind:     common.KindPasta,
		category: common.CategoryCooked,
	},
	{
		name: "rice_bowl",
		match: func(cores []string) bool {
			return riceVocab.anyIn(cores)
		},
		kind:     common.KindRiceBowl,
		category: common.CategoryCooked,
	},
	{
		name: "salad",
		match: func(cores []string) bool {
			return leafyVocab.anyIn(cores) &&
				(cheeseVocab.anyIn(cores) || legumeVocab.anyIn(cores) || meatVocab.anyIn(cores))
		},
		kind:     common.KindSalad,
		category: common.CategorySimple,
	},
	{
		name: "smoothie",
		match: func(cores []string) bool {
			return fruitVocab.anyIn(cores) && dairyDrinkVocab.anyIn(cores)
		},
		kind:     common.KindSmoothie,
		category: common.CategorySimple,
	},
	{
		name: "sandwich",
		match: func(cores []string) bool {
			return breadVocab.anyIn(cores)
		},
		kind:     common.KindSandwich,
		category: common.CategorySimple,
	},
	{
		name: "entree",
		match: func(cores []string) bool {
			return proteinVocab.anyIn(cores) && !hasBase(cores)
		},
		kind:     common.KindEntree,
		category: common.CategoryCooked,
	},
}

// Classify 依序評估規則表，給核心名稱集合一個分類
// 空集合分類為 simple/generic，永不失敗
func Classify(cores []string) Classification {
	for _, rule := range classifierRules {
		if rule.match(cores) {
			return Classification{Category: rule.category, Kind: rule.kind}
		}
	}
	if proteinVocab.anyIn(cores) || vegetableVocab.anyIn(cores) {
		return Classification{Category: common.CategoryCooked, Kind: common.KindGeneric}
	}
	return Classification{Category: common.CategorySimple, Kind: common.KindGeneric}
}

// 給標題與組裝器用的 first-match accessor

func firstProtein(cores []string) string   { return proteinVocab.firstIn(cores) }
func firstVegetable(cores []string) string { return vegetableVocab.firstIn(cores) }
func firstCarb(cores []string) string      { return carbVocab.firstIn(cores) }
func firstLeafy(cores []string) string     { return leafyVocab.firstIn(cores) }
func firstFruit(cores []string) string     { return fruitVocab.firstIn(cores) }
