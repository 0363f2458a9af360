package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"

	"go.uber.org/zap"
)

// ResponseCache 生成式回應快取介面，鍵為 prompt
type ResponseCache interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
	Close() error
}

// NewResponseCache 依設定選擇快取後端；快取停用時回傳 nil
func NewResponseCache(cfg *config.Config) (ResponseCache, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}
	if cfg.Cache.Backend == "redis" {
		return NewRedisCache(&cfg.Cache)
	}
	return NewManager(cfg), nil
}

// CacheManager 行程內快取管理器：TTL、LRU 淘汰與統計
type CacheManager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
}

// cacheEntry 緩存條目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager 創建新的緩存管理器
func NewManager(cfg *config.Config) *CacheManager {
	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		stats:  cacheStats{},
		done:   make(chan struct{}),
	}

	// 啟動清理過期緩存的協程
	go m.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get 獲取緩存值
func (m *CacheManager) Get(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := hashString(prompt)

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", common.ErrCacheDisabled
	}

	// 檢查是否過期
	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogInfo("快取已過期",
			zap.String("鍵", key),
		)
		return "", common.ErrCacheDisabled
	}

	// 更新訪問統計
	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++

	common.LogCacheHit("memory", key)
	return entry.value, nil
}

// Set 設置緩存值
func (m *CacheManager) Set(ctx context.Context, prompt, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 檢查緩存大小
	if len(m.store) >= m.config.Cache.MaxSize {
		// 清理過期項目
		evicted := m.cleanup()
		common.LogInfo("快取清理執行",
			zap.Int("清理數量", evicted),
		)

		// 如果仍然超過大小限制，執行 LRU 清理
		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRU()
		}

		// 如果仍然超過大小限制，返回錯誤
		if len(m.store) >= m.config.Cache.MaxSize {
			m.stats.errors++
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(m.store)),
			)
			return common.ErrCacheFull
		}
	}

	key := hashString(prompt)

	now := time.Now()
	m.store[key] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}

	common.LogInfo("快取已儲存",
		zap.String("鍵", key),
	)

	return nil
}

// hashString 計算字符串的 SHA-256 哈希值
func hashString(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

// startCleanup 啟動清理過期緩存的協程
func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanup()
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

// cleanup 清理過期的緩存，呼叫端需持有鎖
func (m *CacheManager) cleanup() int {
	now := time.Now()
	count := 0

	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	return count
}

// evictLRU 執行 LRU 清理
func (m *CacheManager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	// 找到最少訪問的項目
	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)",
			zap.String("鍵", oldestKey),
		)
	}
}

// GetStats 獲取緩存統計信息
func (m *CacheManager) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉緩存管理器
func (m *CacheManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	close(m.done)
	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
