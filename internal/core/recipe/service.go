package recipe

import (
	"context"

	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"

	"go.uber.org/zap"
)

// Generator 生成式後端的介面，由 GenerativeService 實現
// (nil, nil) 表示 no-result，(nil, err) 表示失敗；兩者都觸發確定性回退
type Generator interface {
	TryGenerate(ctx context.Context, phrases []string, diet string, timeMinutes int) (*common.Recipe, error)
	Model() string
	Enabled() bool
}

// RecipeBuilder 確定性管線的介面，測試時可注入 spy
type RecipeBuilder interface {
	Build(rawPhrases []string, diet string, timeMinutes int) (*common.Recipe, error)
}

// Pipeline 確定性合成管線：正規化 → 分類 → 標題 → 組裝
type Pipeline struct{}

// NewPipeline 創建確定性管線
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Build 執行完整的確定性合成
func (p *Pipeline) Build(rawPhrases []string, diet string, timeMinutes int) (*common.Recipe, error) {
	cores := NormalizeAll(rawPhrases)
	cls := Classify(cores)
	return Assemble(rawPhrases, cores, cls, diet, timeMinutes)
}

// SynthesisService 合成協調器：先試生成式後端，失敗就走確定性管線
// 引擎預設值由建構時注入，深層函數不讀環境
type SynthesisService struct {
	engineCfg config.EngineConfig
	generator Generator
	pipeline  RecipeBuilder
}

// NewSynthesisService 創建合成協調器，generator 可為 nil（純確定性模式）
func NewSynthesisService(engineCfg config.EngineConfig, generator Generator, pipeline RecipeBuilder) *SynthesisService {
	if pipeline == nil {
		pipeline = NewPipeline()
	}
	return &SynthesisService{
		engineCfg: engineCfg,
		generator: generator,
		pipeline:  pipeline,
	}
}

// Synthesize 從原始食材清單產生 Recipe
// 生成式結果通過驗證時原樣回傳（只補 provenance），完全跳過確定性管線；
// 否則回退。唯一會回傳的錯誤是零可用食材的 ValidationError。
func (s *SynthesisService) Synthesize(ctx context.Context, rawIngredients []string, diet string, timeMinutes int) (*common.Recipe, error) {
	if diet == "" {
		diet = s.engineCfg.DefaultDiet
	}
	if timeMinutes <= 0 {
		timeMinutes = s.engineCfg.DefaultTimeMinutes
	}

	phrases := ParseIngredientList(rawIngredients)
	if len(phrases) == 0 {
		return nil, common.NewValidationError("at least one ingredient is required")
	}

	if s.generator != nil && s.generator.Enabled() {
		recipe, err := s.generator.TryGenerate(ctx, phrases, diet, timeMinutes)
		switch {
		case err != nil:
			// 生成式失敗一律在這裡吸收，不往外傳
			common.LogWarn("生成式後端失敗，改用確定性管線",
				zap.String("model", s.generator.Model()),
				zap.Error(err),
			)
		case recipe != nil:
			recipe.Provenance = common.Provenance{
				UsedGenerative: true,
				Model:          s.generator.Model(),
			}
			return recipe, nil
		}
	}

	recipe, err := s.pipeline.Build(phrases, diet, timeMinutes)
	if err != nil {
		return nil, err
	}
	recipe.Provenance = common.Provenance{UsedGenerative: false}
	return recipe, nil
}

// ComputeMissingItems 比對食譜食材與庫存快照，給 HTTP 層的薄包裝
func (s *SynthesisService) ComputeMissingItems(recipeLines []string, inventory []common.InventoryItem) []string {
	return ComputeMissing(recipeLines, inventory)
}
