package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SecureHeaders sets the static security headers. The CSP itself comes from CSPNonce.
func SecureHeaders(production bool) echo.MiddlewareFunc {
	cfg := echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if production {
		cfg.HSTSMaxAge = 31536000
		cfg.HSTSExcludeSubdomains = false
	}
	return echomiddleware.SecureWithConfig(cfg)
}
