package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"roa-expert-system/internal/middleware"
	"roa-expert-system/pkg/log"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(nopLogger{})

	t.Run("Generates an id and threads it through context", func(t *testing.T) {
		router := gin.New()
		router.Use(mw.RequestID())

		var ctxID string
		router.GET("/", func(c *gin.Context) {
			ctxID = log.RequestIDFromCtx(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		headerID := w.Header().Get("X-Request-ID")
		if headerID == "" {
			t.Fatal("expected generated request id header")
		}
		if ctxID != headerID {
			t.Errorf("context id %q != header id %q", ctxID, headerID)
		}
	})

	t.Run("Adopts caller-provided id", func(t *testing.T) {
		router := gin.New()
		router.Use(mw.RequestID())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "caller-id")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "caller-id" {
			t.Errorf("expected caller id to be echoed, got %q", got)
		}
	})
}
