// Package middleware holds HTTP middleware that is not tied to one feature.
package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for response compression
type CompressionConfig struct {
	MinSize       int      // first write smaller than this is sent as is
	Level         int      // gzip level, 1-9
	ContentTypes  []string // compressible content types
	ExcludedPaths []string // prefixes that negotiate encoding themselves
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   gzip.DefaultCompression,
		ContentTypes: []string{
			"application/json",
			"text/plain",
			"text/html",
			"text/css",
			"application/javascript",
		},
		ExcludedPaths: []string{"/metrics"},
	}
}

// Compressor gzips responses for clients that accept it
type Compressor struct {
	config CompressionConfig
	pool   sync.Pool

	total      atomic.Int64
	compressed atomic.Int64
	bytesIn    atomic.Int64
	bytesOut   atomic.Int64
}

// NewCompressor creates a new compression middleware
func NewCompressor(config CompressionConfig) *Compressor {
	if config.Level < gzip.HuffmanOnly || config.Level > gzip.BestCompression {
		config.Level = gzip.DefaultCompression
	}
	c := &Compressor{config: config}
	c.pool.New = func() interface{} {
		gz, _ := gzip.NewWriterLevel(io.Discard, c.config.Level)
		return gz
	}
	return c
}

// Handler returns the gin middleware
func (cm *Compressor) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cm.clientAcceptsGzip(c.Request) || cm.excluded(c.Request.URL.Path) {
			c.Next()
			return
		}

		gw := &gzipWriter{ResponseWriter: c.Writer, cm: cm}
		c.Writer = gw
		c.Header("Vary", "Accept-Encoding")

		defer func() {
			gw.finish()
			cm.total.Add(1)
		}()

		c.Next()
	}
}

func (cm *Compressor) clientAcceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

func (cm *Compressor) excluded(path string) bool {
	for _, prefix := range cm.config.ExcludedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (cm *Compressor) shouldCompress(contentType string) bool {
	for _, ct := range cm.config.ContentTypes {
		if strings.Contains(contentType, ct) {
			return true
		}
	}
	return false
}

// GetStats returns compression statistics
func (cm *Compressor) GetStats() map[string]interface{} {
	in, out := cm.bytesIn.Load(), cm.bytesOut.Load()
	ratio := float64(0)
	if in > 0 {
		ratio = float64(out) / float64(in)
	}
	return map[string]interface{}{
		"total_requests":      cm.total.Load(),
		"compressed_requests": cm.compressed.Load(),
		"bytes_in":            in,
		"bytes_out":           out,
		"compression_ratio":   ratio,
	}
}

// gzipWriter decides on the first write whether the body gets compressed
type gzipWriter struct {
	gin.ResponseWriter
	cm      *Compressor
	gz      *gzip.Writer
	decided bool
	counter *countingWriter
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func (g *gzipWriter) decide(first []byte) {
	g.decided = true

	h := g.Header()
	if h.Get("Content-Encoding") != "" || len(first) < g.cm.config.MinSize || !g.cm.shouldCompress(h.Get("Content-Type")) {
		return
	}

	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")

	g.counter = &countingWriter{w: g.ResponseWriter}
	g.gz = g.cm.pool.Get().(*gzip.Writer)
	g.gz.Reset(g.counter)
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	if !g.decided {
		g.decide(data)
	}
	if g.gz == nil {
		return g.ResponseWriter.Write(data)
	}
	g.cm.bytesIn.Add(int64(len(data)))
	return g.gz.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) Flush() {
	if g.gz != nil {
		_ = g.gz.Flush()
	}
	g.ResponseWriter.Flush()
}

func (g *gzipWriter) finish() {
	if g.gz == nil {
		return
	}
	_ = g.gz.Close()
	g.cm.pool.Put(g.gz)
	g.gz = nil

	g.cm.compressed.Add(1)
	g.cm.bytesOut.Add(g.counter.n)
}
