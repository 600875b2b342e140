//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"meter-reading-api/internal/handler/httperr"
	"meter-reading-api/internal/handler/middleware"
	"meter-reading-api/internal/pkg/config"
	"meter-reading-api/internal/pkg/errs"
	"meter-reading-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.POST("/upload", func(c *gin.Context) {
		panic("recognizer exploded")
	})

	w := httptest.PerformRequest(t, engine, http.MethodPost, "/upload", nil)
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, w.Body.String(), "exploded")
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders recorded public error", func(t *testing.T) {
		engine := newEngine()
		engine.POST("/upload", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errs.New("bad input"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusBadRequest, ErrorCode: httperr.CodeInvalidData, ErrorDescription: `"image" is required`},
			})
		})

		w := httptest.PerformRequest(t, engine, http.MethodPost, "/upload", nil)
		httptest.AssertInvalidDataResponse(t, w, http.StatusBadRequest, `"image" is required`)
	})

	t.Run("renders httperr aborts", func(t *testing.T) {
		engine := newEngine()
		engine.POST("/upload", func(c *gin.Context) {
			httperr.AbortWithInvalidData(c, errs.New("bad"), `"measure_type" must be one of [WATER, GAS]`)
		})

		w := httptest.PerformRequest(t, engine, http.MethodPost, "/upload", nil)
		httptest.AssertInvalidDataResponse(t, w, http.StatusBadRequest, `"measure_type" must be one of [WATER, GAS]`)
	})

	t.Run("latest public error wins", func(t *testing.T) {
		engine := newEngine()
		engine.POST("/upload", func(c *gin.Context) {
			httperr.AbortWithInvalidData(c, errs.New("bad"), `"image" is required`)
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("dial tcp 10.0.0.1:443: i/o timeout"), "Failed to process the image")
		})

		w := httptest.PerformRequest(t, engine, http.MethodPost, "/upload", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Failed to process the image")
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
	})

	t.Run("responses already written are kept", func(t *testing.T) {
		engine := newEngine()
		engine.POST("/upload", func(c *gin.Context) {
			c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("late"), "Failed to process the image")
		})

		w := httptest.PerformRequest(t, engine, http.MethodPost, "/upload", nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.NotContains(t, w.Body.String(), "Failed to process the image")
	})

	t.Run("aborts render nothing without the handler", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.POST("/upload", func(c *gin.Context) {
			httperr.AbortWithInvalidData(c, errs.New("bad"), `"image" is required`)
		})

		w := httptest.PerformRequest(t, engine, http.MethodPost, "/upload", nil)
		assert.Empty(t, w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	preflight := map[string]string{
		"Origin":                        "http://frontend.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	}

	t.Run("any origin", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
		engine.POST("/upload", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.PerformRequestWithHeaders(t, engine, http.MethodOptions, "/upload", nil, preflight)
		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": "*"})
		httptest.AssertHeaderPresent(t, w, "Access-Control-Allow-Methods")
	})

	t.Run("restricted origins", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowAllOrigins = false
		cfg.AllowOrigins = []string{"http://frontend.example.com"}

		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(cfg))
		engine.POST("/upload", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.PerformRequestWithHeaders(t, engine, http.MethodOptions, "/upload", nil, preflight)
		httptest.AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": "http://frontend.example.com"})

		preflight["Origin"] = "http://evil.example.com"
		w = httptest.PerformRequestWithHeaders(t, engine, http.MethodOptions, "/upload", nil, preflight)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
