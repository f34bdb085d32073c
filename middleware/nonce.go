package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce middleware generates a nonce for each request and adds it to the context.
// imgSources are extra origins allowed for images (content images, R2 public bucket).
func CSPNonce(imgSources ...string) echo.MiddlewareFunc {
	img := strings.TrimSpace("'self' data: " + strings.Join(imgSources, " "))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				Logger(c).Error("failed to generate nonce", zap.Error(err))
				nonce = "fallback-nonce-value" // Should rarely happen, but prevents crash
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for components)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' https://unpkg.com https://code.iconify.design https://challenges.cloudflare.com; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; img-src %s; font-src 'self' https://fonts.gstatic.com; connect-src 'self' https://api.iconify.design https://challenges.cloudflare.com; frame-src https://challenges.cloudflare.com; form-action 'self'; base-uri 'self'", nonce, img)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
