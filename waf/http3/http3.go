package http3

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
)

// Config for the optional HTTP/3 listener. The same scan-protected handler
// chain serves h3 and h1/h2 traffic.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Port        string `json:"port"`
	CertFile    string `json:"cert_file"`
	KeyFile     string `json:"key_file"`
	MaxStreams  int64  `json:"max_streams"`
	IdleTimeout int    `json:"idle_timeout"`
	AltSvc      bool   `json:"alt_svc"`
}

type Server struct {
	config     Config
	server     *http3.Server
	quicConfig *quic.Config
	mu         sync.RWMutex
	running    bool
}

func NewServer(cfg Config) *Server {
	if cfg.Port == "" {
		cfg.Port = ":443"
	}
	if cfg.MaxStreams == 0 {
		cfg.MaxStreams = 100
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 30
	}

	return &Server{
		config: cfg,
		quicConfig: &quic.Config{
			MaxIncomingStreams:    cfg.MaxStreams,
			MaxIdleTimeout:        time.Duration(cfg.IdleTimeout) * time.Second,
			KeepAlivePeriod:       15 * time.Second,
			MaxIncomingUniStreams: 10,
		},
	}
}

func (s *Server) Start(handler http.Handler) error {
	if !s.config.Enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	cert, err := tls.LoadX509KeyPair(s.config.CertFile, s.config.KeyFile)
	if err != nil {
		return err
	}

	if s.config.AltSvc {
		handler = altSvcHandler(handler)
	}

	s.server = &http3.Server{
		Addr:    s.config.Port,
		Handler: handler,
		TLSConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS13,
			NextProtos:   []string{"h3", "h3-29"},
		},
		QUICConfig: s.quicConfig,
	}
	s.running = true

	go func() {
		log.Printf("[HTTP/3] Listening on %s", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[HTTP/3] Server error: %v", err)
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	log.Println("[HTTP/3] Shutting down")
	err := s.server.Close()
	s.running = false
	return err
}

func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func altSvcHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Alt-Svc", `h3=":443"; ma=2592000`)
		next.ServeHTTP(w, r)
	})
}
