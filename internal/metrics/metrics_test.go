package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_Middleware(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad signature", http.StatusUnauthorized)
	}))

	servedBefore := testutil.ToFloat64(InteractionsServed.WithLabelValues("401"))
	authBefore := testutil.ToFloat64(AuthFailures)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discord", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, servedBefore+1, testutil.ToFloat64(InteractionsServed.WithLabelValues("401")))
	assert.Equal(t, authBefore+1, testutil.ToFloat64(AuthFailures))
}

func Test_Middleware_DefaultStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":1}`))
	}))

	servedBefore := testutil.ToFloat64(InteractionsServed.WithLabelValues("200"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discord", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servedBefore+1, testutil.ToFloat64(InteractionsServed.WithLabelValues("200")))
}
