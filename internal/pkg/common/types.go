package common

import (
	"fmt"
	"strings"
)

// CookingCategory 烹調類別：決定步驟模板與是否允許補基本調味料
type CookingCategory string

const (
	CategoryAssembly CookingCategory = "assembly" // 免加熱組裝，不補調味料
	CategorySimple   CookingCategory = "simple"   // 輕度處理（烤、拌），不補調味料
	CategoryCooked   CookingCategory = "cooked"   // 需要加熱，允許補 salt/pepper/oil
)

// DishKind 料理種類：只影響標題與份量表，與 CookingCategory 分開追蹤
type DishKind string

const (
	KindPBJ       DishKind = "pbj"
	KindSandwich  DishKind = "sandwich"
	KindRiceBowl  DishKind = "rice_bowl"
	KindPasta     DishKind = "pasta"
	KindSalad     DishKind = "salad"
	KindSmoothie  DishKind = "smoothie"
	KindBreakfast DishKind = "breakfast"
	KindEntree    DishKind = "entree"
	KindGeneric   DishKind = "generic"
)

// RecipeMeta 食譜附加資訊
type RecipeMeta struct {
	Diet        string          `json:"diet"`
	TimeMinutes int             `json:"time_minutes"`
	Category    CookingCategory `json:"category"`
}

// Provenance 記錄食譜來源：生成式後端或本地確定性管線
type Provenance struct {
	UsedGenerative bool   `json:"used_generative"`
	Model          string `json:"model,omitempty"`
}

// Recipe 合成輸出：標題、帶份量的食材列表、依序的步驟
// 每次合成都建立新值，引擎不保留引用
type Recipe struct {
	Title       string     `json:"title"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	Meta        RecipeMeta `json:"meta"`
	Provenance  Provenance `json:"provenance"`
}

// InventoryItem 呼叫端提供的庫存快照項目（唯讀）
type InventoryItem struct {
	Name    string `json:"name"`
	InStock bool   `json:"in_stock"`
}

// StringList 接受字串或字串陣列的請求欄位
// "chicken, rice" 與 ["chicken","rice"] 視為相同輸入
type StringList []string

// UnmarshalJSON 實現 json.Unmarshaler 介面
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := ParseJSONBytes(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var single string
	if err := ParseJSONBytes(data, &single); err != nil {
		return err
	}
	parts := strings.Split(single, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}

// GenerateRecipeRequest 產生食譜的請求
type GenerateRecipeRequest struct {
	Ingredients StringList `json:"ingredients"`
	Diet        string     `json:"diet,omitempty"`
	TimeMinutes int        `json:"time_minutes,omitempty"`
}

// MissingItemsRequest 比對庫存、計算缺少食材的請求
type MissingItemsRequest struct {
	Ingredients []string        `json:"ingredients"`
	Inventory   []InventoryItem `json:"inventory"`
}

// RenderRecipeText 將 Recipe 轉成給前端顯示的純文字區塊
func RenderRecipeText(r *Recipe) string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Diet: %s  •  Time: %d min\n\nIngredients:\n", r.Meta.Diet, r.Meta.TimeMinutes))

	if len(r.Ingredients) == 0 {
		sb.WriteString("- (none)\n")
	} else {
		for _, ing := range r.Ingredients {
			sb.WriteString("- " + strings.TrimSpace(ing) + "\n")
		}
	}

	sb.WriteString("\nSteps:\n")
	if len(r.Steps) == 0 {
		sb.WriteString("1. (none)\n")
	} else {
		for i, step := range r.Steps {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.TrimSpace(step)))
		}
	}

	return sb.String()
}
