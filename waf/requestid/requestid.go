package requestid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

type contextKey string

const (
	// Header carries the request ID end to end.
	Header = "X-Request-ID"
	// BlockRefHeader is stamped on rejected responses so a support ticket
	// quoting it can be matched to the detections log line.
	BlockRefHeader = "X-Block-Ref"

	requestIDKey = contextKey("requestID")
)

// Middleware tags each request with a unique ID so detections can be
// correlated with upstream access logs.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// honor an ID assigned by an upstream proxy
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = generate()
		}

		w.Header().Set(Header, reqID)

		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BlockRef marks a rejected response with the request's ID and returns it
// for the detection log record. Requests that never passed through the
// middleware get an ID minted here, so the log line and the response header
// always agree.
func BlockRef(w http.ResponseWriter, r *http.Request) string {
	id := FromRequest(r)
	if id == "" {
		id = generate()
	}
	w.Header().Set(BlockRefHeader, id)
	return id
}

// FromContext retrieves the request ID from a context.
func FromContext(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// FromRequest retrieves the request ID from a request's context.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}

func generate() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
