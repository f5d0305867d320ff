package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const cacheName = "bookable_windows"

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// MetricsRecorder счетчики попаданий и промахов кэша
// nil допустим - метрики тогда не пишутся
type MetricsRecorder interface {
	CacheHit(cache string)
	CacheMiss(cache string)
}

// WindowsCache LRU-кэш посчитанных окон бронирования
// Ключ - пара (шаблон, дата); инвалидация по шаблону выполняется
// при любой мутации его расписания
type WindowsCache struct {
	mu      sync.RWMutex
	cache   *lru.Cache[string, []domain.TimeWindow]
	logger  Logger
	metrics MetricsRecorder
}

// NewWindowsCache создает кэш окон на size записей
func NewWindowsCache(size int, logger Logger, metrics MetricsRecorder) (*WindowsCache, error) {
	c, err := lru.New[string, []domain.TimeWindow](size)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to init lru: %w", err)
	}

	return &WindowsCache{
		cache:   c,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Get возвращает закэшированные окна для шаблона и даты
func (c *WindowsCache) Get(templateID int64, date time.Time) ([]domain.TimeWindow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	windows, ok := c.cache.Get(cacheKey(templateID, date))
	if !ok {
		if c.metrics != nil {
			c.metrics.CacheMiss(cacheName)
		}
		c.logger.Debug("WindowsCache: miss template=%d date=%s", templateID, date.Format(domain.DateFormat))
		return nil, false
	}

	if c.metrics != nil {
		c.metrics.CacheHit(cacheName)
	}
	c.logger.Debug("WindowsCache: hit template=%d date=%s", templateID, date.Format(domain.DateFormat))
	return windows, true
}

// Put кладет окна для шаблона и даты в кэш
func (c *WindowsCache) Put(templateID int64, date time.Time, windows []domain.TimeWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(cacheKey(templateID, date), windows)
}

// InvalidateTemplate выбрасывает все записи шаблона
// Вызывается при любой мутации слотов, исключений или самого шаблона
func (c *WindowsCache) InvalidateTemplate(templateID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := fmt.Sprintf("%d:", templateID)
	removed := 0
	for _, key := range c.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Remove(key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug("WindowsCache: invalidated %d entries for template=%d", removed, templateID)
	}
}

// Len возвращает текущее количество записей в кэше
func (c *WindowsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

func cacheKey(templateID int64, date time.Time) string {
	return fmt.Sprintf("%d:%s", templateID, date.Format(domain.DateFormat))
}
