package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitThrottlesBursts(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var ok, throttled int
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		switch rec.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			throttled++
		}
	}

	if ok == 0 {
		t.Error("expected some requests to pass")
	}
	if throttled == 0 {
		t.Error("expected a 30-request burst to be throttled")
	}
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// exhaust the bucket for one IP
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", nil)
		req.RemoteAddr = "10.0.0.2:50000"
		handler(httptest.NewRecorder(), req, nil)
	}

	// a different IP still gets through
	req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", nil)
	req.RemoteAddr = "10.0.0.3:50000"
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected fresh IP to pass, got %d", rec.Code)
	}
}
