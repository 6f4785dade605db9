package compression

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"injectwaf/waf/metrics"

	"github.com/andybalholm/brotli"
)

// Config bounds request-body decompression. Bodies are inflated before the
// scanner runs so compressed payloads cannot hide from it.
type Config struct {
	Enabled   bool
	MaxBodyMB int // decompressed size cap (default: 10)
}

type Handler struct {
	config Config
}

func NewHandler(config Config) *Handler {
	if config.MaxBodyMB == 0 {
		config.MaxBodyMB = 10
	}
	return &Handler{config: config}
}

// Handle replaces a compressed request body with its cleartext before the
// next handler sees it. Unknown encodings pass through untouched.
func (h *Handler) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.config.Enabled || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
		if encoding == "" || encoding == "identity" {
			next.ServeHTTP(w, r)
			return
		}

		var reader io.Reader
		switch encoding {
		case "br":
			reader = brotli.NewReader(r.Body)
		case "gzip":
			gz, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "Malformed compressed body", http.StatusBadRequest)
				return
			}
			defer gz.Close()
			reader = gz
		default:
			next.ServeHTTP(w, r)
			return
		}

		limit := int64(h.config.MaxBodyMB) << 20
		body, err := io.ReadAll(io.LimitReader(reader, limit+1))
		if err != nil {
			http.Error(w, "Malformed compressed body", http.StatusBadRequest)
			return
		}
		if int64(len(body)) > limit {
			http.Error(w, "Decompressed body too large", http.StatusRequestEntityTooLarge)
			return
		}

		metrics.BodiesDecompressed.WithLabelValues(encoding).Inc()

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")

		next.ServeHTTP(w, r)
	})
}
