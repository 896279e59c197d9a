package ratelimit

import "time"

// Config bounds the number of attempts per key inside a sliding window.
type Config struct {
	Limit  int
	Window time.Duration
}

// RateLimiter decides whether an attempt identified by key may proceed.
type RateLimiter interface {
	Allow(key string, cfg Config) (bool, error)
	Reset(key string) error
}
