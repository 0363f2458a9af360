package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func okRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestBodySizeLimit(t *testing.T) {
	router := okRouter(BodySizeLimit(16))

	small := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"a":1}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, small)
	if w.Code != http.StatusOK {
		t.Errorf("small body: status = %d, want 200", w.Code)
	}

	big := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"a":"0123456789012345678901234567890123456789"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, big)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("big body: status = %d, want 413", w.Code)
	}
}

func TestDeduplicationBlocksRepeatedPost(t *testing.T) {
	cfg := &config.Config{DedupWindow: time.Minute}
	router := okRouter(Deduplication(cfg))

	body := `{"ingredients":["dedup-test-unique-payload"]}`

	first := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", w.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, second)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("duplicate request: status = %d, want 429", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	router := okRouter(RateLimit(2, time.Minute))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("over limit: status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}
