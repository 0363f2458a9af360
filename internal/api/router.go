package api

import (
	"context"
	"net/http"
	"time"

	"recipe-engine/internal/api/handlers/health"
	recipeHandler "recipe-engine/internal/api/handlers/recipe"
	"recipe-engine/internal/api/middleware"
	"recipe-engine/internal/core/ai/cache"
	"recipe-engine/internal/core/ai/gemini"
	"recipe-engine/internal/core/ai/service"
	recipeService "recipe-engine/internal/core/recipe"
	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (1MB)，純文字食材清單用不到更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, responseCache cache.ResponseCache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New()) // 自動生成請求 ID
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制與去重
	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化服務：生成式後端沒有憑證就整條停用，合成退回確定性管線
	var generator recipeService.Generator
	if cfg.Gemini.Enabled && cfg.Gemini.APIKey != "" {
		provider := gemini.NewClient(cfg.Gemini)
		aiService := service.NewService(cfg, provider, responseCache)
		generator = recipeService.NewGenerativeService(cfg.Gemini, aiService)
		common.LogInfo("Generative backend initialized",
			zap.String("model", cfg.Gemini.Model),
			zap.Bool("cache_enabled", responseCache != nil),
		)
	} else {
		common.LogInfo("Generative backend disabled, deterministic pipeline only")
	}

	synthesis := recipeService.NewSynthesisService(cfg.Engine, generator, nil)

	// 全局中間件：設置請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck(cfg.App.Version))
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(synthesis)

		recipes := api.Group("/recipes")
		{
			// 從食材清單合成食譜
			recipes.POST("/generate", handler.HandleGenerate)

			// 比對庫存、計算缺少的食材
			recipes.POST("/missing", handler.HandleMissing)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("generative_enabled", generator != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
