package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommonDefaults(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	var c Common
	require.NoError(t, Parse(&c))

	assert.Equal(t, 100, c.RateLimit)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
}

func TestParseRejectsBadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")

	var c Common
	assert.Error(t, Parse(&c))
}

func TestCustomLoggerMiddlewareKeepsStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(CustomLoggerMiddleware())
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestCreateUniqueInstanceDoesNotLog(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	id := CreateUniqueInstance("test")

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetInstanceId())
	assert.Empty(t, hook.AllEntries())
}

func TestCustomLoggerMiddlewareTagsInstance(t *testing.T) {
	id := CreateUniqueInstance("test")
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(CustomLoggerMiddleware())
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.Data["instance_id"])
	assert.NotEmpty(t, entry.Data["request_id"])
}
