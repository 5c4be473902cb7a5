package neo4jdb

import (
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

func TestGuardWrapsDriverFailures(t *testing.T) {
	g := newGuard(logger.NewNop(), nil, BreakerConfig{})
	_, err := g.run("list_users", func() (any, error) { return nil, errors.New("connection reset") })
	if !errors.Is(err, errs.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestGuardPassesDomainErrorsThrough(t *testing.T) {
	g := newGuard(logger.NewNop(), nil, BreakerConfig{MinRequests: 1, FailureRatio: 0.1})
	notFound := fmt.Errorf("user %q: %w", "u1", errs.ErrNotFound)
	for i := 0; i < 5; i++ {
		_, err := g.run("get_user", func() (any, error) { return nil, notFound })
		if !errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrStoreUnavailable) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	out, err := g.run("get_user", func() (any, error) { return "ok", nil })
	if err != nil || out != "ok" {
		t.Fatalf("breaker should still be closed: %v %v", out, err)
	}
}

func TestGuardOpensAfterFailures(t *testing.T) {
	g := newGuard(logger.NewNop(), nil, BreakerConfig{MinRequests: 2, FailureRatio: 0.5, Timeout: time.Hour})
	boom := func() (any, error) { return nil, errors.New("boom") }
	_, _ = g.run("op", boom)
	_, _ = g.run("op", boom)

	called := false
	_, err := g.run("op", func() (any, error) {
		called = true
		return nil, nil
	})
	if called {
		t.Fatalf("open circuit should not call through")
	}
	if !errors.Is(err, errs.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable from open circuit, got %v", err)
	}
}
