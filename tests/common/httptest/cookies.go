//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AssertCookieCleared checks that the response expires the cookie right away.
func AssertCookieCleared(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()

	c := ExtractCookie(w, name)
	require.NotNil(t, c, "cookie %s was not set", name)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
