package main

import (
	"digital_analytics_site/config"
	"digital_analytics_site/handlers"
	"digital_analytics_site/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// contentImageHosts serve the case study and contact background images
var contentImageHosts = []string{"https://images.unsplash.com", "https://images.rawpixel.com"}

// newServer wires middleware and routes. The limiter guards both contact routes.
func newServer(cfg *config.Config, logger *zap.Logger, site *handlers.Site, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	imgSources := contentImageHosts
	if cfg.R2PublicURL != "" {
		imgSources = append(append([]string{}, imgSources...), cfg.R2PublicURL)
	}

	// Middleware
	e.Use(middleware.RequestID(logger))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.SecureHeaders(cfg.IsProduction()))
	e.Use(middleware.CSPNonce(imgSources...))
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", cfg.StaticDir)

	e.GET("/", site.LandingHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/sitemap.xml", site.GetSitemapHandler)
	e.GET("/healthz", site.HealthHandler)

	contact := limiter.Middleware()
	e.POST("/contact", site.SubmitContactFormHandler, contact)
	e.POST("/api/contact", site.ContactAPIHandler, contact)

	return e
}
