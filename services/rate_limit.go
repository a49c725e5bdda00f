package services

import (
	"fmt"
	"net/http"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lingoleap/lingo_api/shared"
)

// RateLimitService throttles the model-backed endpoints with a fixed window
// per user in Redis. Without Redis the limiter is a no-op; the cheap CRUD
// endpoints are never limited.
type RateLimitService struct {
	appContext.DefaultService

	redisSvc *RedisService

	configs map[string]rateLimitConfig
}

type rateLimitConfig struct {
	MaxRequests int
	WindowSize  time.Duration
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.configs = map[string]rateLimitConfig{
		"generate":  {MaxRequests: 20, WindowSize: time.Hour},
		"translate": {MaxRequests: 60, WindowSize: time.Hour},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	if !svc.redisSvc.Enabled() {
		log.Warn("Redis disabled, rate limiting is off")
	}
	return nil
}

// Limit returns middleware enforcing the named endpoint budget for the
// authenticated user. Runs after RequiredAuth.
func (svc *RateLimitService) Limit(endpoint string) fiber.Handler {
	config, ok := svc.configs[endpoint]

	return func(c *fiber.Ctx) error {
		if !ok || !svc.redisSvc.Enabled() {
			return c.Next()
		}

		userID, _ := c.Locals(shared.UserID).(string)
		if userID == "" {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", endpoint, userID)
		ctx := c.UserContext()

		count, err := svc.redisSvc.Increment(ctx, key)
		if err != nil {
			// Limiter failures never block traffic.
			log.WithError(err).Warn("Rate limit check failed")
			return c.Next()
		}
		if count == 1 {
			if err := svc.redisSvc.Expire(ctx, key, config.WindowSize); err != nil {
				log.WithError(err).Warn("Failed to set rate limit window")
			}
		}

		if count > int64(config.MaxRequests) {
			retryAfter := config.WindowSize
			if ttl, err := svc.redisSvc.TTL(ctx, key); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			return shared.ResponseJSON(c, http.StatusTooManyRequests, "Too Many Requests",
				fmt.Sprintf("rate limit exceeded for %s", endpoint))
		}

		return c.Next()
	}
}
