package recipe

import (
	"fmt"
	"regexp"

	"recipe-engine/internal/pkg/common"
)

// 組裝規則：
//   assembly — 原始片語照抄（只有份量表有精確對應時換成帶份量的行），絕不補調味料
//   simple   — 原始片語照抄，輸入中出現的特定食材補份量字尾，不補調味料
//   cooked   — 每行補上查表得到的份量，缺的 salt/black pepper/olive oil 會補進去

// assemblyQuantities 組裝類料理的精確份量表，鍵為 core name
var assemblyQuantities = map[string]string{
	"bread":         "2 slices bread",
	"peanut butter": "2 tbsp peanut butter",
	"jelly":         "1–2 tbsp jelly",
	"jam":           "1–2 tbsp jam",
	"preserves":     "1–2 tbsp preserves",
}

// simpleQuantities 輕處理類料理中會補份量字尾的食材
var simpleQuantities = map[string]string{
	"banana": "1 banana, sliced",
	"honey":  "1 tsp honey",
	"milk":   "1 cup milk",
	"yogurt": "1/2 cup yogurt",
}

// staple 基本調味料與其「已存在」判斷
// "Salt" 與 "sea salt" 都算已有鹽，不能重複補
type staple struct {
	line    string
	present *regexp.Regexp
}

var staples = []staple{
	{line: "salt", present: regexp.MustCompile(`\bsalt\b`)},
	{line: "black pepper", present: regexp.MustCompile(`\bblack pepper\b|^pepper$`)},
	{line: "olive oil", present: regexp.MustCompile(`\bolive oil\b|\boil\b`)},
}

var leadingDigit = regexp.MustCompile(`^\d`)

// Assemble 由食材、分類與標題組出完整 Recipe
// 唯一的失敗情況是 core name 集合為空（零可用食材），回 ValidationError
func Assemble(rawPhrases []string, cores []string, cls Classification, diet string, timeMinutes int) (*Recipe, error) {
	if len(cores) == 0 {
		return nil, common.NewValidationError("cannot build a recipe from zero ingredients")
	}

	ingredients := assembleIngredients(rawPhrases, cores, cls)
	steps := assembleSteps(cores, cls)

	return &Recipe{
		Title:       SynthesizeTitle(cores, rawPhrases, cls),
		Ingredients: ingredients,
		Steps:       steps,
		Meta: common.RecipeMeta{
			Diet:        diet,
			TimeMinutes: timeMinutes,
			Category:    cls.Category,
		},
	}, nil
}

func assembleIngredients(rawPhrases []string, cores []string, cls Classification) []string {
	lines := make([]string, 0, len(rawPhrases)+3)

	for _, raw := range rawPhrases {
		core := Normalize(raw)
		if core == "" {
			continue
		}
		lines = append(lines, ingredientLine(raw, core, cls.Category))
	}

	// 補調味料是 category 加既有 core 集合的純函數，絕不看生成式後端的輸出
	if cls.Category == common.CategoryCooked {
		for _, s := range staples {
			if !stapleAlreadyPresent(cores, s) {
				lines = append(lines, s.line)
			}
		}
	}

	return lines
}

func ingredientLine(raw, core string, category common.CookingCategory) string {
	switch category {
	case common.CategoryAssembly:
		if q, ok := assemblyQuantities[core]; ok {
			return q
		}
		return raw
	case common.CategorySimple:
		if q, ok := simpleQuantities[core]; ok {
			return q
		}
		return raw
	default:
		return cookedQuantityLine(raw, core)
	}
}

// cookedQuantityLine 為 cooked 類食材補上合理份量
// 呼叫端已經寫了份量（以數字開頭）就不再動它
func cookedQuantityLine(raw, core string) string {
	if leadingDigit.MatchString(raw) {
		return raw
	}
	switch {
	case eggVocab.matches(core):
		return "2–3 " + raw
	case proteinVocab.matches(core):
		return "6–8 oz " + raw
	case riceVocab.matches(core), pastaVocab.matches(core), carbVocab.matches(core):
		return "1 cup " + raw
	case vegetableVocab.matches(core):
		return "1–2 cups " + raw
	case cheeseVocab.matches(core):
		return "1/2 cup " + raw
	case butterFatVocab.matches(core):
		return "1 tbsp " + raw
	case breadVocab.matches(core):
		return "2 slices " + raw
	default:
		return raw + ", to taste"
	}
}

func stapleAlreadyPresent(cores []string, s staple) bool {
	for _, core := range cores {
		if s.present.MatchString(core) {
			return true
		}
	}
	return false
}

// assembleSteps 依料理種類取步驟模板，缺席的階段直接省略
// 每行是一個祈使句，不帶編號
func assembleSteps(cores []string, cls Classification) []string {
	switch cls.Kind {
	case common.KindPBJ:
		return []string{
			"Lay out two slices of bread.",
			"Spread peanut butter on one slice and jelly on the other.",
			"Press the slices together.",
			"Slice if you like and serve.",
		}

	case common.KindSandwich:
		if cls.Category == common.CategoryCooked {
			return []string{
				"Butter the outside of each bread slice.",
				"Place the cheese between the slices.",
				"Toast the sandwich in a pan over medium heat until golden on both sides, 2–3 minutes per side.",
				"Slice and serve hot.",
			}
		}
		return []string{
			"Lay out the bread or wrap.",
			"Layer the remaining ingredients on top.",
			"Close the sandwich.",
			"Slice and serve.",
		}

	case common.KindBreakfast:
		return []string{
			"Crack the eggs into a bowl, add a pinch of salt, and whisk.",
			"Warm a pan over medium heat with a little butter or oil.",
			"Pour in the eggs and gently stir until softly set.",
			"Serve immediately.",
		}

	case common.KindPasta:
		steps := []string{
			"Boil the pasta in salted water until al dente, then drain, saving a splash of pasta water.",
		}
		if protein := firstProtein(cores); protein != "" {
			steps = append(steps, fmt.Sprintf("Cook the %s in a pan over medium-high heat for 6–8 minutes until done.", protein))
		}
		if veg := firstVegetable(cores); veg != "" {
			steps = append(steps, fmt.Sprintf("Add the %s and cook until tender.", veg))
		}
		return append(steps, "Toss the pasta with the pan mixture, loosen with pasta water if needed, and serve.")

	case common.KindRiceBowl:
		base := firstCarbBase(cores)
		steps := []string{
			fmt.Sprintf("Cook the %s, or warm it if already cooked.", base),
		}
		if protein := firstProtein(cores); protein != "" {
			steps = append(steps, fmt.Sprintf("Cook the %s in a skillet over medium-high heat for 6–8 minutes until done.", protein))
		}
		if veg := firstVegetable(cores); veg != "" {
			steps = append(steps, fmt.Sprintf("Add the %s and cook until tender-crisp.", veg))
		}
		return append(steps, fmt.Sprintf("Add the %s, season to taste, and toss everything together. Serve.", base))

	case common.KindSalad:
		leafy := firstLeafy(cores)
		if leafy == "" {
			leafy = "greens"
		}
		return []string{
			fmt.Sprintf("Wash and dry the %s.", leafy),
			"Chop the remaining ingredients into bite-size pieces.",
			"Toss everything together in a large bowl and serve.",
		}

	case common.KindSmoothie:
		fruit := firstFruit(cores)
		if fruit == "" {
			fruit = "fruit"
		}
		liquid := dairyDrinkVocab.firstIn(cores)
		if liquid == "" {
			liquid = "milk"
		}
		return []string{
			fmt.Sprintf("Add the %s and %s to a blender.", fruit, liquid),
			"Blend until smooth, adding a splash more liquid to loosen if needed.",
			"Pour into a glass and serve.",
		}

	default:
		if cls.Category != common.CategoryCooked {
			return []string{
				"Prep your ingredients.",
				"Combine everything in a bowl.",
				"Serve.",
			}
		}
		steps := []string{"Prep your ingredients."}
		if protein := firstProtein(cores); protein != "" {
			steps = append(steps, fmt.Sprintf("Cook the %s over medium-high heat for 6–8 minutes until done.", protein))
		}
		if veg := firstVegetable(cores); veg != "" {
			steps = append(steps, fmt.Sprintf("Cook the %s until tender.", veg))
		}
		return append(steps, "Combine, season to taste, and serve.")
	}
}

// firstCarbBase 找 rice bowl 的主食名稱，照輸入順序取第一個
func firstCarbBase(cores []string) string {
	if base := riceVocab.firstIn(cores); base != "" {
		return base
	}
	return "rice"
}
