package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeIdempotencyStore struct {
	checkAndSetFn func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	updateFn      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func (f *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if f.checkAndSetFn != nil {
		return f.checkAndSetFn(ctx, key, response, ttl)
	}
	return false, nil, nil
}

func (f *fakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, key, response, ttl)
	}
	return nil
}

func TestIdempotencyMiddleware_SkipsNonMutatingRequests(t *testing.T) {
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			t.Fatal("store should not be consulted for GET requests")
			return false, nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-get")
	rr := httptest.NewRecorder()

	called := false
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if !called {
		t.Fatal("expected next handler to be called")
	}
}

func TestIdempotencyMiddleware_SkipsWithoutKey(t *testing.T) {
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	called := false
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if !called {
		t.Fatal("expected next handler to be called")
	}
}

func TestIdempotencyMiddleware_ReturnsCachedResponse(t *testing.T) {
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return true, []byte(`{"cached":true}`), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-123")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called when cached response exists")
	})).ServeHTTP(rr, req)

	if rr.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatal("expected X-Idempotency-Replay header to be set")
	}
	if got := rr.Body.String(); got != `{"cached":true}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestIdempotencyMiddleware_ProcessingFallsThrough(t *testing.T) {
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return true, []byte("processing"), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-inflight")
	rr := httptest.NewRecorder()

	called := false
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if !called {
		t.Fatal("a processing placeholder must not be replayed as a response")
	}
}

func TestIdempotencyMiddleware_CachesSuccessfulResponses(t *testing.T) {
	var cached []byte
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{
		updateFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) error {
			cached = response
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-ok")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"TX-0001"}`))
	})).ServeHTTP(rr, req)

	if string(cached) != `{"id":"TX-0001"}` {
		t.Fatalf("expected response to be cached, got %q", cached)
	}
}

func TestIdempotencyMiddleware_DoesNotCacheFailedResponses(t *testing.T) {
	var updated bool
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{
		updateFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) error {
			updated = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-fail")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})).ServeHTTP(rr, req)

	if updated {
		t.Fatal("expected error responses not to be cached")
	}
}

func TestIdempotencyMiddleware_StoreError(t *testing.T) {
	mw := NewIdempotencyMiddleware(&fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return false, nil, context.DeadlineExceeded
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-err")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called when the store errors")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}
