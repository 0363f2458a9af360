package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-engine/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   version,
			Runtime: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]interface{}{
					"alloc":       m.Alloc,
					"total_alloc": m.TotalAlloc,
					"sys":         m.Sys,
					"num_gc":      m.NumGC,
				},
			},
		}

		common.LogInfo("Health check request",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)

		c.JSON(http.StatusOK, response)
	}
}

// ReadinessCheck 就緒檢查處理器
func ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
