package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const loggerKey = "logger"

// RequestID tags every request with a UUID and a request-scoped zap logger
func RequestID(base *zap.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set(loggerKey, base.With(zap.String("request_id", id)))
		},
	})
}

// Logger returns the request-scoped logger, or a no-op logger outside RequestID
func Logger(c echo.Context) *zap.Logger {
	if l, ok := c.Get(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// RequestLogger writes one zap line per request
func RequestLogger(base *zap.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			switch {
			case v.Error != nil:
				base.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Status >= http.StatusInternalServerError:
				base.Error("request", fields...)
			case v.Status >= http.StatusBadRequest:
				base.Warn("request", fields...)
			default:
				base.Info("request", fields...)
			}
			return nil
		},
	})
}
