package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
)

func TestFromErrorMapsTaxonomy(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("user_id: %w", errs.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{fmt.Errorf("user %q: %w", "u1", errs.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: dial", errs.ErrStoreUnavailable), http.StatusServiceUnavailable, "store_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
		{BadRequest("nothing_to_update", errors.New("nothing to update")), http.StatusBadRequest, "nothing_to_update"},
	}
	for _, tc := range cases {
		got := FromError(tc.err)
		if got.Status != tc.status || got.Code != tc.code {
			t.Fatalf("FromError(%v) = %d/%s, want %d/%s", tc.err, got.Status, got.Code, tc.status, tc.code)
		}
	}
	if FromError(nil) != nil {
		t.Fatalf("FromError(nil) should be nil")
	}
}
