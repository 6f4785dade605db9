// Package waf wires the injection detection engines into HTTP middleware.
package waf

import (
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"injectwaf/waf/exempt"
	"injectwaf/waf/injection"
	"injectwaf/waf/metrics"
	"injectwaf/waf/requestid"
)

// Config carries the middleware collaborators. A zero config scans with no
// exemptions and logs detections to the default logger.
type Config struct {
	ExemptHandler *exempt.Handler
	DetectionsLog *log.Logger
}

var (
	cfgMu sync.RWMutex
	cfg   Config
)

// Init installs the middleware configuration.
func Init(c Config) {
	cfgMu.Lock()
	cfg = c
	cfgMu.Unlock()
}

func current() Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg
}

// pre-compiled header validators
var (
	crlfRegex          = regexp.MustCompile(`[\r\n]`)
	headerSplitRegex   = regexp.MustCompile(`[\r\n]\s*[a-zA-Z-]+\s*:`)
	contentLengthRegex = regexp.MustCompile(`^\d+$`)
	headerNameRegex    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*[a-zA-Z0-9]$|^[a-zA-Z]$`)
)

// Protect scans every input vector of the request and rejects it on the
// first detection. Valid exemption tokens skip the scan.
func Protect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := current()
		metrics.RequestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()

		// header structure first: smuggling and splitting attempts never
		// reach the scanner
		if valid, reason := ValidateHeaders(r); !valid {
			metrics.HeaderValidationFailed.WithLabelValues(reason).Inc()
			http.Error(w, "Malformed request", http.StatusBadRequest)
			return
		}

		if c.ExemptHandler != nil {
			if ok, subject := c.ExemptHandler.Exempt(r); ok {
				metrics.ExemptedRequests.WithLabelValues(subject).Inc()
				next(w, r)
				return
			}
		}

		start := time.Now()
		result := injection.Scan(r)
		verdict := "clean"
		if result != nil {
			verdict = result.Kind
		}
		metrics.ScanDuration.WithLabelValues(verdict).Observe(time.Since(start).Seconds())

		if result != nil {
			metrics.RequestsBlocked.WithLabelValues(result.Kind, result.Vector).Inc()
			switch result.Kind {
			case "sqli":
				metrics.SQLiDetections.WithLabelValues(result.Vector).Inc()
			case "xss":
				metrics.XSSDetections.WithLabelValues(result.Vector).Inc()
			}

			logger := c.DetectionsLog
			if logger == nil {
				logger = log.Default()
			}
			ref := requestid.BlockRef(w, r)
			logger.Printf("blocked %s ref=%s vector=%s fingerprint=%q payload=%q",
				result.Kind, ref, result.Vector,
				result.Fingerprint, truncate(result.Payload, 256))

			http.Error(w, "Request blocked", http.StatusForbidden)
			return
		}

		metrics.RequestsAllowed.Inc()
		next(w, r)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// ValidateHeaders rejects structurally malformed or smuggling-shaped
// headers. Returns false with a reason on failure.
func ValidateHeaders(r *http.Request) (bool, string) {
	const maxHeaderLength = 8192

	for name, values := range r.Header {
		if !headerNameRegex.MatchString(name) {
			return false, "invalid header name"
		}

		for _, value := range values {
			if strings.Contains(value, "\x00") {
				return false, "null byte in header value"
			}
			if crlfRegex.MatchString(value) {
				return false, "crlf in header value"
			}
			if headerSplitRegex.MatchString(value) {
				return false, "header injection attempt"
			}
			if len(value) > maxHeaderLength {
				return false, "header value too long"
			}
			if !utf8.ValidString(value) {
				return false, "invalid utf-8 in header"
			}
		}
	}

	if r.Host == "" {
		return false, "missing host header"
	}
	if strings.ContainsAny(r.Host, "\r\n\x00") {
		return false, "invalid host header"
	}

	if contentLength := r.Header.Get("Content-Length"); contentLength != "" {
		if !contentLengthRegex.MatchString(contentLength) {
			return false, "invalid content-length"
		}
	}

	for _, header := range []string{"Host", "Content-Length", "Transfer-Encoding"} {
		if len(r.Header[header]) > 1 {
			return false, "duplicate critical header"
		}
	}

	// conflicting framing headers are the classic smuggling setup
	if r.Header.Get("Content-Length") != "" && r.Header.Get("Transfer-Encoding") != "" {
		return false, "conflicting framing headers"
	}

	return true, ""
}
