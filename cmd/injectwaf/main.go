package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"injectwaf/handlers"
	"injectwaf/waf"
	"injectwaf/waf/compression"
	"injectwaf/waf/exempt"
	"injectwaf/waf/health"
	"injectwaf/waf/http3"
	"injectwaf/waf/logging"
	"injectwaf/waf/reload"
	"injectwaf/waf/requestid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "v1.2.0"

func main() {
	// setup log rotation - keeps logs from eating disk space
	logWriter := logging.SetupRotation(logging.Config{
		Enabled:    true,
		Filename:   "./logs/injectwaf.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})
	log.SetOutput(logWriter)

	detectionsLog := logging.Detections(logging.Config{
		Enabled:    true,
		Filename:   "./logs/detections.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     90,
		Compress:   true,
	})

	// scan exemptions - disabled unless a secret is configured
	exemptHandler, err := exempt.NewHandler(exempt.Config{
		Enabled:   os.Getenv("SCAN_EXEMPT_SECRET") != "",
		Secret:    os.Getenv("SCAN_EXEMPT_SECRET"),
		Algorithm: "HS256",
		Issuer:    "injectwaf",
		SkipPaths: []string{"/login"},
	})
	if err != nil {
		log.Printf("Warning: Could not initialize exemption handler - %v (all requests will be scanned)", err)
	}

	waf.Init(waf.Config{
		ExemptHandler: exemptHandler,
		DetectionsLog: detectionsLog,
	})

	// hot-reload setup so rule changes don't need a restart
	reloadMgr, err := reload.NewManager(reload.Config{
		OverlayPath:    "./config/overlay_rules.json",
		ExemptionsPath: "./config/exemptions.json",
		ExemptHandler:  exemptHandler,
		DebounceTime:   2 * time.Second,
		WatchEnabled:   true,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize hot-reload system - %v (rule changes will require restart)", err)
	} else {
		if err := reloadMgr.ReloadAll(); err != nil {
			log.Printf("Initial rules load incomplete: %v", err)
		}
	}
	defer func() {
		if reloadMgr != nil {
			_ = reloadMgr.Stop()
		}
	}()

	// catch SIGHUP for manual rules reload
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP)
	go func() {
		for range sigChan {
			log.Println("Received SIGHUP signal, reloading all rules...")
			if reloadMgr != nil {
				if err := reloadMgr.ReloadAll(); err != nil {
					log.Printf("Rules reload failed: %v", err)
				} else {
					log.Println("All rules reloaded successfully")
				}
			}
		}
	}()

	decompressor := compression.NewHandler(compression.Config{
		Enabled:   true,
		MaxBodyMB: 10,
	})

	mux := http.NewServeMux()

	// monitoring surface; /metrics and /reload are loopback only
	mux.Handle("/metrics", waf.LocalhostOnly(promhttp.Handler()))
	mux.HandleFunc("/health", health.Handler(version))
	mux.Handle("/reload", waf.LocalhostOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST requests are accepted for rules reload", http.StatusMethodNotAllowed)
			return
		}
		if reloadMgr == nil {
			http.Error(w, "Hot-reload system is not available", http.StatusInternalServerError)
			return
		}

		log.Println("Rules reload requested via /reload endpoint")
		if err := reloadMgr.ReloadAll(); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status": "error",
				"error":  err.Error(),
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"config": reloadMgr.GetStatus(),
		})
	})))

	// application endpoints behind the scanner
	mux.HandleFunc("/", waf.Protect(handlers.Home))
	mux.HandleFunc("/login", waf.Protect(handlers.Login))
	mux.HandleFunc("/echo", waf.Protect(handlers.Echo))
	mux.HandleFunc("/search", waf.Protect(handlers.Search))

	// middleware layers: request ID -> body decompression -> routes
	handler := requestid.Middleware(decompressor.Handle(mux))

	// HTTP/3 listener, off unless HTTP3_ENABLED=true
	h3 := http3.NewServer(http3.Config{
		Enabled:  os.Getenv("HTTP3_ENABLED") == "true",
		Port:     ":443",
		CertFile: os.Getenv("HTTP3_CERT_FILE"),
		KeyFile:  os.Getenv("HTTP3_KEY_FILE"),
		AltSvc:   true,
	})
	if err := h3.Start(handler); err != nil {
		log.Printf("[HTTP/3] Failed to start: %v", err)
	}

	fmt.Printf("injectwaf %s listening on http://localhost:8080\n", version)
	fmt.Println("  SQLi/XSS scanning on all input vectors")
	fmt.Println("  Health check endpoint at /health")
	fmt.Println("  Prometheus metrics at /metrics (loopback only)")
	fmt.Println("  Rules reload at /reload (POST, loopback only) or kill -SIGHUP <pid>")
	fmt.Println("  Detections logged to ./logs/detections.log")

	log.Fatal(http.ListenAndServe(":8080", handler))
}
