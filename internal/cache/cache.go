package cache

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"studyhub_backend/internal/metrics"
)

const keySeparator = "|"

// Запись кеша, живет пока now < expiresAt
type entry struct {
	value     any
	expiresAt time.Time
}

// Cache - in-process кеш с TTL на запись.
// Ключ собирается из владельца и логического endpoint'а.
// Значения не переживают рестарт процесса
type Cache struct {
	mtx     sync.RWMutex
	entries map[string]entry

	group singleflight.Group

	sweepInterval time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once

	now func() time.Time
}

// New - создает кеш. Фоновая чистка запускается отдельно через StartSweeper
func New(sweepInterval time.Duration) *Cache {
	return &Cache{
		entries:       make(map[string]entry),
		sweepInterval: sweepInterval,
		stopCh:        make(chan struct{}),
		now:           time.Now,
	}
}

func key(owner, endpoint string) string {
	return owner + keySeparator + endpoint
}

// GetOrFetch - возвращает живое значение из кеша либо вызывает producer.
// Результат producer'а кладется в кеш с expiry now+ttl, ошибка producer'а не кешируется.
// Конкурентные промахи по одному ключу делят один вызов producer'а
func (c *Cache) GetOrFetch(owner, endpoint string, ttl time.Duration, producer func() (any, error)) (any, error) {
	k := key(owner, endpoint)

	if value, ok := c.get(k); ok {
		metrics.CacheHits.Inc()
		return value, nil
	}

	value, err, _ := c.group.Do(k, func() (any, error) {
		// Пока ждали очередь, значение могла положить другая горутина
		if value, ok := c.get(k); ok {
			metrics.CacheHits.Inc()
			return value, nil
		}

		metrics.CacheMisses.Inc()
		value, err := producer()
		if err != nil {
			return nil, err
		}

		c.set(k, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Delete - убирает одну запись по владельцу и endpoint'у
func (c *Cache) Delete(owner, endpoint string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	delete(c.entries, key(owner, endpoint))
	metrics.CacheEntries.Set(float64(len(c.entries)))
}

// ClearOwner - убирает все записи владельца
func (c *Cache) ClearOwner(owner string) {
	prefix := owner + keySeparator

	c.mtx.Lock()
	defer c.mtx.Unlock()

	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	metrics.CacheEntries.Set(float64(len(c.entries)))
}

// Clear - полная очистка кеша
func (c *Cache) Clear() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.entries = make(map[string]entry)
	metrics.CacheEntries.Set(0)
}

// Len - количество записей, включая еще не вычищенные протухшие
func (c *Cache) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return len(c.entries)
}

// StartSweeper - запускает фоновую чистку протухших записей.
// Останавливается через Stop при graceful shutdown
func (c *Cache) StartSweeper() {
	go func() {
		ticker := time.NewTicker(c.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-c.stopCh:
				return
			}
		}
	}()
}

// Stop - останавливает фоновую чистку. Повторный вызов безопасен
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// sweep - полный проход по записям с удалением протухших, O(n)
func (c *Cache) sweep() {
	now := c.now()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	if removed > 0 {
		metrics.CacheEvictions.Add(float64(removed))
	}
	metrics.CacheEntries.Set(float64(len(c.entries)))
}

// Чтение с проверкой срока жизни. Протухшая запись считается промахом
func (c *Cache) get(k string) (any, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (c *Cache) set(k string, value any, ttl time.Duration) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.entries[k] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	metrics.CacheEntries.Set(float64(len(c.entries)))
}
