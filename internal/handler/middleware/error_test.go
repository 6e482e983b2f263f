//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"lodging-service/internal/handler/httperr"
	"lodging-service/internal/handler/middleware"
	"lodging-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("conflict"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "Conflict", nil),
		})
	})
	r.GET("/silent", func(*gin.Context) {})

	t.Run("public error meta becomes the response", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Conflict")
	})

	t.Run("AbortWithError records a public error carrying the response", func(t *testing.T) {
		var recorded *gin.Error
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Next()
			recorded = c.Errors.Last()
		}, middleware.ErrorHandler())
		r.GET("/abort", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errors.New("room taken"), "Conflict", nil)
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/abort", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Conflict")
		if assert.NotNil(t, recorded) {
			assert.True(t, recorded.IsType(gin.ErrorTypePublic))
			resp, ok := recorded.Meta.(httperr.Response)
			assert.True(t, ok)
			assert.Equal(t, http.StatusConflict, resp.Status)
			assert.EqualError(t, recorded.Err, "room taken")
		}
	})

	t.Run("handler that writes nothing yields 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
