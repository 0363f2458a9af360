package recipe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"

	"go.uber.org/zap"
)

// TextGenerator 文字生成介面，由 internal/core/ai/service.Service 實現
// 測試時注入假實現
type TextGenerator interface {
	ProcessRequest(ctx context.Context, prompt string) (string, error)
}

// GenerativeService 生成式後端適配器
// 所有失敗（缺金鑰、網路錯誤、JSON 壞掉、結構不符）都收斂成 no-result，
// 絕不 panic、絕不把內部錯誤丟給 Orchestrator 以外的人
type GenerativeService struct {
	cfg config.GeminiConfig
	ai  TextGenerator
}

// NewGenerativeService 創建生成式後端適配器
func NewGenerativeService(cfg config.GeminiConfig, ai TextGenerator) *GenerativeService {
	return &GenerativeService{cfg: cfg, ai: ai}
}

// Enabled 憑證與客戶端都就緒才會嘗試網路請求
func (s *GenerativeService) Enabled() bool {
	return s.cfg.Enabled && s.cfg.APIKey != "" && s.ai != nil
}

// Model 回傳設定的模型識別名
func (s *GenerativeService) Model() string {
	return s.cfg.Model
}

// looseRecipe 寬鬆版中繼結構：多餘欄位忽略，meta 型別雜訊不阻塞解析
type looseRecipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Meta        struct {
		Diet        string       `json:"diet"`
		TimeMinutes looseMinutes `json:"timeMinutes"`
	} `json:"meta"`
}

// looseMinutes 容錯的分鐘數：數字、數字字串都收，解析不了就當 0
// 後端 meta 的型別雜訊不能讓整個回應作廢
type looseMinutes int

func (m *looseMinutes) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*m = looseMinutes(n)
	} else {
		*m = 0
	}
	return nil
}

// TryGenerate 呼叫生成式後端產生食譜
// 回傳 (nil, nil) 代表 no-result（未啟用），(nil, err) 代表失敗需要回退，
// 兩者對 Orchestrator 都意味著走確定性管線
func (s *GenerativeService) TryGenerate(ctx context.Context, phrases []string, diet string, timeMinutes int) (*common.Recipe, error) {
	if !s.Enabled() {
		return nil, nil
	}

	prompt := buildRecipePrompt(phrases, diet, timeMinutes)

	raw, err := s.ai.ProcessRequest(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generative backend call failed: %w", err)
	}

	jsonText := common.ExtractJSONObject(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("no JSON object in generative response")
	}

	var lr looseRecipe
	if err := common.ParseJSON(jsonText, &lr); err != nil {
		// 模型偶爾回傳未加引號的鍵，補上後再試一次
		if retryErr := common.ParseJSON(common.QuoteJSONKeys(jsonText), &lr); retryErr != nil {
			common.LogDebug("生成式回應解析失敗",
				zap.Int("response_length", len(raw)),
			)
			return nil, fmt.Errorf("failed to parse generative response: %w", err)
		}
	}

	recipe, err := validateLooseRecipe(&lr, diet, timeMinutes)
	if err != nil {
		return nil, fmt.Errorf("generative response failed validation: %w", err)
	}
	return recipe, nil
}

// validateLooseRecipe 結構驗證：title 非空、ingredients 與 steps 都是非空字串陣列
// 後端自稱的 diet/timeMinutes 不可信，缺失或格式錯誤一律用呼叫端的值
func validateLooseRecipe(lr *looseRecipe, diet string, timeMinutes int) (*common.Recipe, error) {
	title := strings.TrimSpace(lr.Title)
	if title == "" {
		return nil, fmt.Errorf("missing title")
	}

	ingredients := trimNonEmpty(lr.Ingredients)
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("empty ingredients")
	}
	steps := trimNonEmpty(lr.Steps)
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty steps")
	}

	metaDiet := strings.TrimSpace(lr.Meta.Diet)
	if metaDiet == "" {
		metaDiet = diet
	}
	metaTime := timeMinutes
	if lr.Meta.TimeMinutes > 0 {
		metaTime = int(lr.Meta.TimeMinutes)
	}

	return &common.Recipe{
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		Meta: common.RecipeMeta{
			Diet:        metaDiet,
			TimeMinutes: metaTime,
		},
	}, nil
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// buildRecipePrompt 組出要求後端只回 JSON 的提示
func buildRecipePrompt(phrases []string, diet string, timeMinutes int) string {
	ingredientsJSON, _ := common.ToJSON(phrases)

	return strings.TrimSpace(fmt.Sprintf(`
Return STRICT JSON ONLY. No markdown, no commentary.

Schema:
{
  "title": string,
  "ingredients": string[],
  "steps": string[],
  "meta": { "diet": string, "timeMinutes": number }
}

Hard rules:
- Make a REAL dish a human would eat.
- Use the provided ingredients; you may add ONLY basic staples (salt, pepper, oil, water).
- If ingredients strongly imply a common dish, choose that dish.
  - Example: bread + peanut butter + jelly => "PB&J Sandwich" (do NOT add oil/salt/pepper).
- Steps must be clear, specific, and in a logical order.
- Ingredients should include reasonable amounts when possible (e.g. "2 slices bread", "1 tbsp peanut butter").
- Title must not include jokes or commentary.

Ingredients: %s
Diet: %s
TimeMinutes: %d`, ingredientsJSON, diet, timeMinutes))
}
