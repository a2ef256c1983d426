package inventory

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestProbeLimiterStore_Basic(t *testing.T) {
	store := NewProbeLimiterStore(1, 2)

	limiter := store.GetLimiter("host1")
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestProbeLimiterStore_Concurrency(t *testing.T) {
	store := NewProbeLimiterStore(10, 5)
	hostname := uuid.NewString()

	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter := store.GetLimiter(hostname)
			if limiter == nil {
				t.Error("expected limiter, got nil")
			}
		}()
	}

	wg.Wait()

	limiter := store.GetLimiter(hostname)
	if limiter == nil {
		t.Error("expected limiter to exist after concurrent access")
	}
}

func TestProbeLimiter_Enforcement(t *testing.T) {
	store := NewProbeLimiterStore(2, 2) // 2 probes/sec

	hostname := uuid.NewString()
	limiter := store.GetLimiter(hostname)

	firstTry := limiter.Allow()
	secondTry := limiter.Allow()
	if !firstTry || !secondTry {
		t.Fatal("expected first two calls to be allowed")
	}

	if limiter.Allow() {
		t.Error("expected third call to be rate limited")
	}

	time.Sleep(600 * time.Millisecond)
	if !limiter.Allow() {
		t.Error("expected one token to be available after refill")
	}
}
