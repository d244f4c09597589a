package security

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 120, cfg.MaxTextLength)
	assert.False(t, cfg.EnableHSTS)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Maria Silva", "Maria Silva"},
		{"accents kept", "  João  Conceição ", "João Conceição"},
		{"script removed", "Ana<script>alert('x')</script> Souza", "Ana Souza"},
		{"tags stripped", "<b>Pedro</b>", "Pedro"},
		{"newlines collapsed", "Carla\n\t Dias", "Carla Dias"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError string
	}{
		{name: "valid", input: "Maria Silva", expected: "Maria Silva"},
		{name: "sanitized", input: "<i>Maria</i>", expected: "Maria"},
		{name: "too long", input: strings.Repeat("a", 11), expectError: "exceeds maximum length of 10"},
		{name: "multibyte within limit", input: strings.Repeat("ç", 10), expected: strings.Repeat("ç", 10)},
		{name: "null byte", input: "Ma\x00ria", expectError: "invalid characters"},
		{name: "invalid utf8", input: "Ma\xff\xferia", expectError: "invalid UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateText("participant_name", tt.input, 10)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Contains(t, err.Error(), "participant_name")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHeadersMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		path      string
		csp       string
		expectSTS bool
	}{
		{"api route", DefaultConfig(), "/api/v1/dimensions", apiPolicy, false},
		{"docs route", DefaultConfig(), "/swagger/index.html", docsPolicy, false},
		{"hsts enabled", Config{EnableHSTS: true}, "/health", apiPolicy, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(HeadersMiddleware(tt.cfg))
			r.GET("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, tt.csp, w.Header().Get("Content-Security-Policy"))
			assert.Equal(t, tt.expectSTS, w.Header().Get("Strict-Transport-Security") != "")
		})
	}
}

func TestRequireJSON(t *testing.T) {
	r := gin.New()
	r.Use(apperrors.ErrorHandler(), RequireJSON())
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/echo", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name           string
		method         string
		body           string
		contentType    string
		expectedStatus int
	}{
		{"json body", http.MethodPost, `{}`, "application/json; charset=utf-8", http.StatusNoContent},
		{"form body", http.MethodPost, `a=b`, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"missing type", http.MethodPost, `{}`, "", http.StatusUnsupportedMediaType},
		{"no body", http.MethodPost, ``, "", http.StatusNoContent},
		{"get", http.MethodGet, ``, "", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/echo", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnsupportedMediaType {
				assert.Contains(t, w.Body.String(), `"category":"validation"`)
			}
		})
	}
}
