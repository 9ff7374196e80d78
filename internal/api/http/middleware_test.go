package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mindconnect/mind-service/internal/observability"
	"github.com/mindconnect/mind-service/pkg/util"
)

func newObservedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs, *observability.Metrics) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), metrics, 5*time.Second)
	return app, logs, metrics
}

func requestLogStatus(t *testing.T, logs *observer.ObservedLogs, path string) int64 {
	t.Helper()
	for _, entry := range logs.FilterMessage("request").All() {
		fields := entry.ContextMap()
		if fields["path"] == path {
			status, ok := fields["status"].(int64)
			if !ok {
				t.Fatalf("request log for %s has no integer status: %v", path, fields)
			}
			return status
		}
	}
	t.Fatalf("no request log entry for %s", path)
	return 0
}

func TestRequestLogRecordsErrorStatus(t *testing.T) {
	app, logs, metrics := newObservedApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return util.NewNotFound("user", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	if got := requestLogStatus(t, logs, "/missing"); got != http.StatusNotFound {
		t.Fatalf("request log status = %d, want 404", got)
	}
	if count := metrics.RequestCounts()["GET /missing 404"]; count != 1 {
		t.Fatalf("request counter for 404 = %d, want 1", count)
	}
	if count := metrics.ErrorCounts()["GET /missing NOT_FOUND"]; count != 1 {
		t.Fatalf("error counter = %d, want 1", count)
	}
}

func TestRequestLogRecordsSuccessStatus(t *testing.T) {
	app, logs, metrics := newObservedApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if got := requestLogStatus(t, logs, "/ok"); got != http.StatusOK {
		t.Fatalf("request log status = %d, want 200", got)
	}
	if count := metrics.RequestCounts()["GET /ok 200"]; count != 1 {
		t.Fatalf("request counter = %d, want 1", count)
	}
}

func TestFiberErrorLogsItsStatus(t *testing.T) {
	app, logs, _ := newObservedApp(t)
	app.Get("/denied", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusForbidden, "insufficient role")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/denied", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if got := requestLogStatus(t, logs, "/denied"); got != http.StatusForbidden {
		t.Fatalf("request log status = %d, want 403", got)
	}
}
