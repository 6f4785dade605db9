package waf

import (
	"net"
	"net/http"
)

// LocalhostOnly guards admin endpoints (/reload, /metrics) so they are only
// reachable from the machine itself.
func LocalhostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		parsed := net.ParseIP(ip)
		if parsed == nil || !parsed.IsLoopback() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
