package recipe

import (
	"net/http"

	recipeService "recipe-engine/internal/core/recipe"
	"recipe-engine/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateResponse 食譜生成回應
type GenerateResponse struct {
	Recipe *common.Recipe `json:"recipe"`
	Text   string         `json:"text"`
}

// MissingResponse 缺少食材回應
type MissingResponse struct {
	Missing []string `json:"missing"`
}

// Handler 食譜處理程序
type Handler struct {
	synthesis *recipeService.SynthesisService
}

// NewHandler 創建新的食譜處理程序
func NewHandler(synthesis *recipeService.SynthesisService) *Handler {
	return &Handler{
		synthesis: synthesis,
	}
}

// HandleGenerate 從食材清單合成食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜合成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req common.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	recipe, err := h.synthesis.Synthesize(c.Request.Context(), req.Ingredients, req.Diet, req.TimeMinutes)
	if err != nil {
		if common.IsValidationError(err) {
			common.LogWarn("食材清單無效",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": common.ErrEmptyIngredient.Code})
			return
		}
		common.LogError("食譜合成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recipe generation failed"})
		return
	}

	common.LogInfo("食譜合成成功",
		zap.String("request_id", requestID),
		zap.String("title", recipe.Title),
		zap.Bool("used_generative", recipe.Provenance.UsedGenerative),
	)

	c.JSON(http.StatusOK, GenerateResponse{
		Recipe: recipe,
		Text:   common.RenderRecipeText(recipe),
	})
}

// HandleMissing 比對食譜食材與庫存快照
func (h *Handler) HandleMissing(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req common.MissingItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	missing := h.synthesis.ComputeMissingItems(req.Ingredients, req.Inventory)

	common.LogInfo("缺少食材計算完成",
		zap.String("request_id", requestID),
		zap.Int("recipe_lines", len(req.Ingredients)),
		zap.Int("missing", len(missing)),
	)

	c.JSON(http.StatusOK, MissingResponse{Missing: missing})
}

// ensureRequestID 確保回應帶有請求 ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
