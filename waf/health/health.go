package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"injectwaf/waf/injection"
)

var startTime = time.Now()

// Status is the health endpoint payload.
type Status struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
	Engine        Engine `json:"engine"`
	System        System `json:"system"`
}

// Engine reports detection configuration state.
type Engine struct {
	OverlayFingerprints int `json:"overlay_fingerprints"`
}

// System contains process-level information.
type System struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"goroutines"`
	MemoryMB     uint64 `json:"memory_mb"`
	NumCPU       int    `json:"num_cpu"`
}

// Handler returns the health check HTTP handler
func Handler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		uptime := time.Since(startTime)

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		status := Status{
			Status:        "healthy",
			Version:       version,
			Uptime:        formatUptime(uptime),
			UptimeSeconds: int64(uptime.Seconds()),
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Engine: Engine{
				OverlayFingerprints: injection.OverlaySize(),
			},
			System: System{
				GoVersion:    runtime.Version(),
				NumGoroutine: runtime.NumGoroutine(),
				MemoryMB:     m.Alloc / 1024 / 1024,
				NumCPU:       runtime.NumCPU(),
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	}
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
