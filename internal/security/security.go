package security

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/gin-gonic/gin"
)

// Config holds the HTTP hardening settings
type Config struct {
	MaxTextLength int  `mapstructure:"max_text_length"`
	EnableHSTS    bool `mapstructure:"enable_hsts"`
}

// DefaultConfig returns secure defaults
func DefaultConfig() Config {
	return Config{
		MaxTextLength: 120,
		EnableHSTS:    false,
	}
}

// apiPolicy forbids everything: the API only ever returns JSON.
const apiPolicy = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'"

// docsPolicy lets the bundled swagger UI load its own assets.
const docsPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"

var (
	scriptPattern  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// HeadersMiddleware adds security headers to every response
func HeadersMiddleware(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		if strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
			c.Header("Content-Security-Policy", docsPolicy)
		} else {
			c.Header("Content-Security-Policy", apiPolicy)
		}

		if cfg.EnableHSTS {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// RequireJSON rejects request bodies that are not JSON. Bodyless requests pass.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		contentType := strings.ToLower(c.GetHeader("Content-Type"))
		if !strings.Contains(contentType, "application/json") {
			builder := errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unsupported content type %q, expected application/json", contentType))
			_ = c.Error(apperrors.NewAppError(builder, apperrors.CategoryValidation, http.StatusUnsupportedMediaType))
			c.Abort()
			return
		}

		c.Next()
	}
}

// SanitizeText trims free text, strips markup and collapses whitespace
func SanitizeText(input string) string {
	input = scriptPattern.ReplaceAllString(input, "")
	input = htmlTagPattern.ReplaceAllString(input, "")
	input = spacePattern.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// ValidateText checks a free-text field after sanitizing it and returns the
// clean value. An empty result is accepted; callers decide whether the field
// is required.
func ValidateText(field, input string, maxLength int) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("%s contains invalid UTF-8 encoding", field)
	}
	if strings.ContainsRune(input, 0) {
		return "", fmt.Errorf("%s contains invalid characters", field)
	}

	clean := SanitizeText(input)
	if maxLength > 0 && utf8.RuneCountInString(clean) > maxLength {
		return "", fmt.Errorf("%s exceeds maximum length of %d characters", field, maxLength)
	}
	return clean, nil
}
