package neo4jdb

import (
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/yungbote/recipegraph-backend/internal/observability"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

const breakerName = "neo4j"

type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gte=0,lte=1"`
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	if c.MaxRequests == 0 {
		c.MaxRequests = 3
	}
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MinRequests == 0 {
		c.MinRequests = 10
	}
	if c.FailureRatio <= 0 {
		c.FailureRatio = 0.6
	}
	return c
}

// guard wraps every store round-trip. Failures that are not domain errors are
// reported as ErrStoreUnavailable, and so is a rejection by an open circuit.
type guard struct {
	cb      *gobreaker.CircuitBreaker[any]
	log     *logger.Logger
	metrics *observability.Metrics
}

func newGuard(log *logger.Logger, metrics *observability.Metrics, cfg BreakerConfig) *guard {
	cfg = cfg.withDefaults()
	metrics.SetBreakerState(breakerName, 0)
	g := &guard{log: log, metrics: metrics}
	g.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.SetBreakerState(name, stateValue(to))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isDomainError(err)
		},
	})
	return g
}

func (g *guard) run(op string, fn func() (any, error)) (any, error) {
	start := time.Now()
	out, err := g.cb.Execute(fn)
	g.metrics.ObserveStore(op, storeFailure(err), time.Since(start))
	if err == nil || isDomainError(err) {
		return out, err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrStoreUnavailable, op, err)
	}
	if errors.Is(err, errs.ErrStoreUnavailable) {
		return nil, err
	}
	g.log.Warn("graph store call failed", "op", op, "error", err)
	return nil, fmt.Errorf("%w: %s: %w", errs.ErrStoreUnavailable, op, err)
}

func storeFailure(err error) error {
	if err == nil || isDomainError(err) {
		return nil
	}
	return err
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
