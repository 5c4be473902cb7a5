package errors

import (
	"fmt"
	"testing"
)

func TestWrappedSentinelsMatch(t *testing.T) {
	err := fmt.Errorf("recipe %q: %w", "r1", ErrNotFound)
	if !Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in %v", err)
	}
	if Is(err, ErrStoreUnavailable) {
		t.Fatalf("unexpected ErrStoreUnavailable in %v", err)
	}

	joined := fmt.Errorf("%w: run query: %w", ErrStoreUnavailable, fmt.Errorf("connection reset"))
	if !Is(joined, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable in %v", joined)
	}
}
