package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"skyline/config"
	"skyline/infras/otel/mocks"
	"skyline/shared/cache"
	cacheMocks "skyline/shared/cache/mocks"
	"skyline/transport/http/middleware"
)

func limited(t *testing.T, redis cache.RedisCache, enable bool) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redis)

	return mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled limiter never touches redis", func(t *testing.T) {
		handler := limited(t, cacheMocks.NewMockRedisCache(gomock.NewController(t)), false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("first request opens the window", func(t *testing.T) {
		redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		redis.EXPECT().Get(gomock.Any(), "limiter:192.0.2.1:unknown", gomock.Any()).Return(cache.Nil)
		redis.EXPECT().Save(gomock.Any(), "limiter:192.0.2.1:unknown", 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		limited(t, redis, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("over the limit", func(t *testing.T) {
		redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ string, value any) error {
				*(value.(*int)) = 2

				return nil
			})

		rec := httptest.NewRecorder()
		limited(t, redis, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("redis outage lets requests through", func(t *testing.T) {
		redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		limited(t, redis, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
