// Package injection runs the SQLi and XSS detection engines over every input
// vector of an HTTP request. The engines are pure; this package adds the
// request plumbing and a runtime overlay of operator-supplied fingerprints.
package injection

import (
	"net/http"
	"sync"

	"injectwaf/waf/injection/sqli"
	"injectwaf/waf/injection/xss"
)

// Result describes a positive detection.
type Result struct {
	Kind        string // "sqli" or "xss"
	Vector      string // which part of the request carried the payload
	Fingerprint string // SQLi fingerprint, empty for XSS
	Payload     string
}

var (
	overlayMu sync.RWMutex
	overlay   map[string]struct{}
)

// SetOverlay replaces the runtime fingerprint overlay. Entries are uppercase
// fingerprint strings treated as additional blacklist rows; they can only add
// detections, never remove them.
func SetOverlay(fingerprints []string) {
	next := make(map[string]struct{}, len(fingerprints))
	for _, fp := range fingerprints {
		next[toUpper(fp)] = struct{}{}
	}
	overlayMu.Lock()
	overlay = next
	overlayMu.Unlock()
}

// OverlaySize returns the number of overlay fingerprints currently loaded.
func OverlaySize() int {
	overlayMu.RLock()
	defer overlayMu.RUnlock()
	return len(overlay)
}

func overlayHit(fingerprint string) bool {
	overlayMu.RLock()
	defer overlayMu.RUnlock()
	if len(overlay) == 0 {
		return false
	}
	_, ok := overlay[toUpper(fingerprint)]
	return ok
}

func toUpper(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if ch >= 'a' && ch <= 'z' {
			b[i] = ch - 0x20
		}
	}
	return string(b)
}

// CheckSQLi tests a single value, consulting the static table and the
// overlay. Returns the fingerprint on detection.
func CheckSQLi(value string) (bool, string) {
	return sqli.Check(value, overlayHit)
}

// CheckXSS tests a single value.
func CheckXSS(value string) bool {
	return xss.IsXSS(value)
}

func checkValue(value, vector string) *Result {
	if ok, fp := CheckSQLi(value); ok {
		return &Result{Kind: "sqli", Vector: vector, Fingerprint: fp, Payload: value}
	}
	if CheckXSS(value) {
		return &Result{Kind: "xss", Vector: vector, Payload: value}
	}
	return nil
}

// criticalHeaders carry structured values that trip the engines constantly;
// they are validated elsewhere and skipped here.
var criticalHeaders = map[string]bool{
	"Content-Type":      true,
	"Content-Length":    true,
	"Host":              true,
	"User-Agent":        true,
	"Accept":            true,
	"Accept-Encoding":   true,
	"Accept-Language":   true,
	"Connection":        true,
	"Transfer-Encoding": true,
}

// Scan checks every input vector of the request and returns the first
// detection, or nil when the request is clean.
func Scan(r *http.Request) *Result {
	for key, vals := range r.URL.Query() {
		for _, v := range vals {
			if res := checkValue(v, "query:"+key); res != nil {
				return res
			}
		}
	}

	if res := checkValue(r.URL.Path, "path"); res != nil {
		return res
	}
	if res := checkValue(r.URL.Fragment, "fragment"); res != nil {
		return res
	}

	_ = r.ParseMultipartForm(32 << 20)
	for key, vals := range r.Form {
		for _, v := range vals {
			if res := checkValue(v, "form:"+key); res != nil {
				return res
			}
		}
	}
	for key, vals := range r.PostForm {
		for _, v := range vals {
			if res := checkValue(v, "form:"+key); res != nil {
				return res
			}
		}
	}

	if r.MultipartForm != nil {
		for key, vals := range r.MultipartForm.Value {
			for _, v := range vals {
				if res := checkValue(v, "multipart:"+key); res != nil {
					return res
				}
			}
		}
		for key, files := range r.MultipartForm.File {
			for _, fh := range files {
				if res := checkValue(fh.Filename, "filename:"+key); res != nil {
					return res
				}
			}
		}
	}

	for key, vals := range r.Header {
		if criticalHeaders[key] {
			continue
		}
		for _, v := range vals {
			if res := checkValue(v, "header:"+key); res != nil {
				return res
			}
		}
	}

	for _, c := range r.Cookies() {
		if res := checkValue(c.Value, "cookie:"+c.Name); res != nil {
			return res
		}
		if res := checkValue(c.Name, "cookie-name"); res != nil {
			return res
		}
	}

	if user, pass, ok := r.BasicAuth(); ok {
		if res := checkValue(user, "basic-auth-user"); res != nil {
			return res
		}
		if res := checkValue(pass, "basic-auth-pass"); res != nil {
			return res
		}
	}

	return nil
}
