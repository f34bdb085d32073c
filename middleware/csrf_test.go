package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		expectedToken := "test-csrf-token"
		c.Set("csrf", expectedToken)

		token := GetCSRFToken(c)
		assert.Equal(t, expectedToken, token)
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123) // Not a string

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})
}

func TestCSRF(t *testing.T) {
	e := echo.New()
	e.Use(CSRF(false))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, GetCSRFToken(c)) })
	e.POST("/contact", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/api/contact", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// Issue a token
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Body.String()
	require.NotEmpty(t, token)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("Form post without token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=Ada"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Form post with token accepted", func(t *testing.T) {
		form := url.Values{CSRFFormField: {token}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("API skipped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
