package cache

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache holds rendered report responses, bounded by size and TTL
type Cache struct {
	items *expirable.LRU[string, []byte]
	ttl   time.Duration
	size  int
}

// NewCache creates a cache of at most size entries, each living for ttl
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 512
	}
	return &Cache{
		items: expirable.NewLRU[string, []byte](size, nil, ttl),
		ttl:   ttl,
		size:  size,
	}
}

// GenerateKey hashes a request into a cache key
func GenerateKey(method, path string, body []byte) string {
	h := md5.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (c *Cache) Get(key string) ([]byte, bool) {
	return c.items.Get(key)
}

func (c *Cache) Set(key string, data []byte) {
	c.items.Add(key, data)
}

func (c *Cache) Delete(key string) {
	c.items.Remove(key)
}

func (c *Cache) Clear() {
	c.items.Purge()
}

// Size returns the number of live entries
func (c *Cache) Size() int {
	return c.items.Len()
}

// Stats returns cache statistics for the health endpoint
func (c *Cache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"active_items": c.items.Len(),
		"max_items":    c.size,
		"ttl_seconds":  c.ttl.Seconds(),
	}
}

// Middleware serves repeated POST bodies from the cache. Only 200 responses
// are stored. Attach it to the routes whose output depends on the body alone.
// A nil logger logs through slog.Default.
func (c *Cache) Middleware(metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = &monitoring.Logger{Logger: slog.Default()}
	}
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodPost {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.Next()
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		cacheKey := GenerateKey(ctx.Request.Method, ctx.Request.URL.Path, body)

		if cachedData, found := c.Get(cacheKey); found {
			logger.CacheLogger("get", cacheKey, true, c.Size())
			metrics.IncCacheHit()
			ctx.Header("X-Cache", "HIT")
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", cachedData)
			ctx.Abort()
			return
		}

		logger.CacheLogger("get", cacheKey, false, c.Size())
		metrics.IncCacheMiss()
		ctx.Header("X-Cache", "MISS")

		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()

		// handler errors are rendered later by the error middleware, so
		// only a body actually written with 200 is cacheable
		if len(ctx.Errors) == 0 && wrapper.Written() && wrapper.Status() == http.StatusOK {
			c.Set(cacheKey, wrapper.body.Bytes())
			logger.CacheLogger("set", cacheKey, false, c.Size())
		}
	}
}

// responseWriter captures the body written through gin
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
