package service

import (
	"context"
	"strings"
	"time"

	"recipe-engine/internal/core/ai/cache"
	"recipe-engine/internal/core/ai/provider"
	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"
)

// Service AI 服務：提示字串正規化、快取查詢與提供者調用
type Service struct {
	config   *config.Config
	provider provider.Provider
	cache    cache.ResponseCache
}

// NewService 創建 AI 服務，cache 可為 nil（不快取）
func NewService(cfg *config.Config, p provider.Provider, c cache.ResponseCache) *Service {
	return &Service{
		config:   cfg,
		provider: p,
		cache:    c,
	}
}

// ProcessRequest 統一對外方法，回傳原始文字內容
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	// 統一 prompt 格式，去除多餘空白、tab、換行，確保快取 key 一致
	cacheKey := strings.Join(strings.Fields(prompt), " ")

	if s.cache != nil {
		if val, err := s.cache.Get(ctx, cacheKey); err == nil && val != "" {
			return val, nil
		}
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, &provider.Request{
		Prompt:    prompt,
		MaxTokens: s.config.Gemini.MaxTokens,
	})
	common.LogAICall(s.provider.GetModel(), time.Since(start), err, requestIDFromContext(ctx))
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, resp.Content)
	}

	return resp.Content, nil
}

// requestIDFromContext 取出中間件放進 context 的請求 ID，取不到就給空字串
func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(common.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
