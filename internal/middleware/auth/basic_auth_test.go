package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protected() http.Handler {
	mw := BasicAuth("admin", "secret")
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.SetBasicAuth("admin", "secret")
	rr := httptest.NewRecorder()

	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.SetBasicAuth("admin", "wrong")
	rr := httptest.NewRecorder()

	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBasicAuth_NoHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rr := httptest.NewRecorder()

	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, `Basic realm="Report Admin"`, rr.Header().Get("WWW-Authenticate"))
}
