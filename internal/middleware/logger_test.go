package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/interest-bank/pkg/configpkg"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.String(http.StatusOK, c.GetString(RequestIDHeader))
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("Generates request ID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		requestID := recorder.Header().Get(RequestIDHeader)
		require.NotEmpty(t, requestID)
		require.Equal(t, requestID, recorder.Body.String())
		require.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
		require.Contains(t, buf.String(), "inside handler")
		require.Contains(t, buf.String(), `"status_code":200`)
	})

	t.Run("Keeps given request ID", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		require.Equal(t, "abc-123", recorder.Header().Get(RequestIDHeader))
		require.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})

	t.Run("Recovers panic", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/panic", nil))

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		require.Contains(t, buf.String(), "panic message: boom")
		require.Contains(t, buf.String(), `"level":"error"`)
	})
}

func TestCreateLogger(t *testing.T) {
	logger := CreateLogger(configpkg.Config{Environment: "production"})
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger = CreateLogger(configpkg.Config{Environment: "development"})
	require.Equal(t, zerolog.TraceLevel, logger.GetLevel())
}
