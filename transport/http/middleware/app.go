package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"adbook/config"
	"adbook/infras/otel"
	"adbook/shared/constant"
	"adbook/transport/http/response"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"

	rateLimitKeyPrefix = "limiter:"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
	UserContext(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	redis  *goRedis.Client
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, redis *goRedis.Client) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		redis:  redis,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
		})

		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": recorder.status,
		})
	})
}

// UserContext resolves the acting user from the X-User header. Requests
// without one are stamped with the system user.
func (a *appMiddleware) UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user := request.Header.Get(constant.RequestHeaderUser)
		if user == constant.Empty {
			user = constant.DefaultUser
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, user)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RateLimit caps requests per source address over a fixed window, counted in
// redis so the limit holds across replicas. Redis trouble fails open.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		cacheKey := rateLimitKeyPrefix + request.RemoteAddr

		count, err := a.redis.Incr(request.Context(), cacheKey).Result()
		if err != nil {
			log.Error().Err(err).Msg("failed to count request for rate limiting")

			next.ServeHTTP(writer, request)

			return
		}

		if count == 1 {
			if err := a.redis.Expire(request.Context(), cacheKey, time.Duration(windowSecs)*time.Second).Err(); err != nil {
				log.Error().Err(err).Msg("failed to set rate limit window")
			}
		}

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(writer)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-int(count))))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}
