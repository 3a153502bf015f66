package middleware

import (
	"marketing-insights-assistant/config"
	"marketing-insights-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled && cfg.PerMinute > 0 {
		m.limiter = newRateLimiter(cfg.PerMinute, cfg.Burst)
	}
	return m
}
