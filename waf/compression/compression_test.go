package compression

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
)

func echoBody(t *testing.T) (http.Handler, *[]byte) {
	t.Helper()
	var got []byte
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		got = body
	})
	return h, &got
}

func TestGzipBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("msg=hello"))
	_ = zw.Close()

	handler := NewHandler(Config{Enabled: true})
	inner, got := echoBody(t)

	r := httptest.NewRequest("POST", "/", &buf)
	r.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.Handle(inner).ServeHTTP(w, r)

	if string(*got) != "msg=hello" {
		t.Errorf("body = %q, want msg=hello", *got)
	}
	if r.Header.Get("Content-Encoding") != "" {
		t.Error("Content-Encoding header not cleared")
	}
}

func TestBrotliBody(t *testing.T) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	_, _ = bw.Write([]byte("payload"))
	_ = bw.Close()

	handler := NewHandler(Config{Enabled: true})
	inner, got := echoBody(t)

	r := httptest.NewRequest("POST", "/", &buf)
	r.Header.Set("Content-Encoding", "br")
	w := httptest.NewRecorder()
	handler.Handle(inner).ServeHTTP(w, r)

	if string(*got) != "payload" {
		t.Errorf("body = %q, want payload", *got)
	}
}

func TestIdentityPassthrough(t *testing.T) {
	handler := NewHandler(Config{Enabled: true})
	inner, got := echoBody(t)

	r := httptest.NewRequest("POST", "/", bytes.NewBufferString("raw"))
	w := httptest.NewRecorder()
	handler.Handle(inner).ServeHTTP(w, r)

	if string(*got) != "raw" {
		t.Errorf("body = %q, want raw", *got)
	}
}

func TestMalformedGzip(t *testing.T) {
	handler := NewHandler(Config{Enabled: true})
	inner, _ := echoBody(t)

	r := httptest.NewRequest("POST", "/", bytes.NewBufferString("not gzip"))
	r.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.Handle(inner).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBodySizeCap(t *testing.T) {
	big := bytes.Repeat([]byte("a"), 2<<20)
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write(big)
	_ = zw.Close()

	handler := NewHandler(Config{Enabled: true, MaxBodyMB: 1})
	inner, _ := echoBody(t)

	r := httptest.NewRequest("POST", "/", &buf)
	r.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.Handle(inner).ServeHTTP(w, r)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}
