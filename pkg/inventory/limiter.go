package inventory

import (
	"sync"

	"golang.org/x/time/rate"
)

// ProbeLimiterStore manages per-hostname probe limiters: hostname -> limiter.
// It keeps a single operator clicking "ping" from flooding a host.
type ProbeLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewProbeLimiterStore(defaultRate rate.Limit, defaultBurst int) *ProbeLimiterStore {
	return &ProbeLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *ProbeLimiterStore) GetLimiter(hostname string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[hostname]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[hostname] = limiter
	}
	return limiter
}
