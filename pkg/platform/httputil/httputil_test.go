package httputil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "uniguide/pkg/domain-errors"
)

func TestQueryInt(t *testing.T) {
	q := url.Values{"n": {"42"}, "bad": {"abc"}, "neg": {"-3"}}
	assert.Equal(t, 42, QueryInt(q, "n", 7))
	assert.Equal(t, 7, QueryInt(q, "bad", 7))
	assert.Equal(t, 7, QueryInt(q, "missing", 7))
	assert.Equal(t, -3, QueryInt(q, "neg", 7))
}

func TestQueryFlag(t *testing.T) {
	for _, raw := range []string{"1", "true", "TRUE", "yes", "Yes"} {
		q := url.Values{"f": {raw}}
		assert.True(t, QueryFlag(q, "f"), raw)
	}
	for _, raw := range []string{"", "0", "false", "on", "no"} {
		q := url.Values{"f": {raw}}
		assert.False(t, QueryFlag(q, "f"), raw)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(2, 5, 50))
	assert.Equal(t, 50, Clamp(500, 5, 50))
	assert.Equal(t, 10, Clamp(10, 5, 50))
}

func TestWriteError(t *testing.T) {
	t.Run("domain error maps code and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeNotFound, "student not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "student not found"}`, rec.Body.String())
	})

	t.Run("wrapped cause stays hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cause := fmt.Errorf("connection refused to 10.0.0.5")
		WriteError(rec, dErrors.Wrap(dErrors.CodeInternal, "failed to fetch students", cause))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "failed to fetch students"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	})

	t.Run("plain error collapses to generic 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, fmt.Errorf("boom"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "internal error"}`, rec.Body.String())
	})
}
