package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
)

func TestRespondErrorMapsTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: limit", errs.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{fmt.Errorf("%w: user u1", errs.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: recommend_read: dial", errs.ErrStoreUnavailable), http.StatusServiceUnavailable, "store_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, tc.err)
		if w.Code != tc.status {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.status)
		}
		var env ErrorEnvelope
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Error.Code != tc.code {
			t.Fatalf("%v: code %q, want %q", tc.err, env.Error.Code, tc.code)
		}
		if tc.status == http.StatusInternalServerError && env.Error.Message != "internal error" {
			t.Fatalf("internal message leaked: %q", env.Error.Message)
		}
	}
}
