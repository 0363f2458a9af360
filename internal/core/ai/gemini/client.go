package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-engine/internal/core/ai/provider"
	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client Gemini 客戶端，實現 provider.Provider 介面
type Client struct {
	cfg    config.GeminiConfig
	client *resty.Client
}

// NewClient 創建 Gemini 客戶端
func NewClient(cfg config.GeminiConfig) *Client {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", cfg.APIKey).
		SetTimeout(cfg.Timeout)

	return &Client{
		cfg:    cfg,
		client: client,
	}
}

// GetModel 獲取當前使用的模型名稱
func (c *Client) GetModel() string {
	return c.cfg.Model
}

// GetTimeout 獲取請求超時時間
func (c *Client) GetTimeout() time.Duration {
	return c.cfg.Timeout
}

// generateContent API 的請求與響應結構
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Generate 呼叫 generateContent API 生成響應
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	body := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: req.Prompt}}},
		},
	}
	if req.MaxTokens > 0 || req.Temperature > 0 {
		body.GenerationConfig = &generationConfig{
			MaxOutputTokens: req.MaxTokens,
			Temperature:     req.Temperature,
		}
	}

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/models/%s:generateContent", c.cfg.Model))

	if err != nil {
		return nil, fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogDebug("Gemini API 回應非 200",
			zap.Int("status", resp.StatusCode()),
		)
		return nil, fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	// 解析回應
	var result generateResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty content in Gemini response")
	}

	out := &provider.Response{Content: text}
	out.Usage.PromptTokens = result.UsageMetadata.PromptTokenCount
	out.Usage.CompletionTokens = result.UsageMetadata.CandidatesTokenCount
	out.Usage.TotalTokens = result.UsageMetadata.TotalTokenCount
	return out, nil
}
