package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareAssignsID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromRequest(r)
	})

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	Middleware(inner).ServeHTTP(w, r)

	if seen == "" {
		t.Fatal("no request ID in context")
	}
	if got := w.Header().Get(Header); got != seen {
		t.Errorf("response header %q = %q, want %q", Header, got, seen)
	}
}

func TestMiddlewareHonorsUpstreamID(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := FromRequest(r); got != "upstream-id" {
			t.Errorf("context ID = %q, want upstream-id", got)
		}
	})

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(Header, "upstream-id")
	w := httptest.NewRecorder()
	Middleware(inner).ServeHTTP(w, r)
}

func TestBlockRef(t *testing.T) {
	// with the middleware: the block ref is the request's ID
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ref := BlockRef(w, r)
		if ref != FromRequest(r) {
			t.Errorf("BlockRef = %q, want request ID %q", ref, FromRequest(r))
		}
	})
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	Middleware(inner).ServeHTTP(w, r)
	if w.Header().Get(BlockRefHeader) == "" {
		t.Error("blocked response missing block ref header")
	}

	// without the middleware: an ID is minted so the log line still has one
	r = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	if ref := BlockRef(w, r); ref == "" {
		t.Error("BlockRef minted no ID")
	}
	if w.Header().Get(BlockRefHeader) == "" {
		t.Error("block ref header not set without middleware")
	}
}
