package exempt

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config controls scan-bypass tokens. Trusted internal clients (vulnerability
// scanners, pentest tooling, migration scripts moving SQL fragments around)
// present a signed token and skip the injection scan entirely.
type Config struct {
	Enabled   bool
	Secret    string
	Algorithm string
	Header    string // header carrying the token (default: X-Scan-Exempt)
	Issuer    string
	Audience  string
	SkipPaths []string // paths never eligible for exemption
}

type Handler struct {
	config Config
	method jwt.SigningMethod

	mu       sync.RWMutex
	subjects map[string]bool // allowed token subjects; empty allows any
}

type Claims struct {
	jwt.RegisteredClaims
	Custom map[string]interface{} `json:"custom,omitempty"`
}

func NewHandler(config Config) (*Handler, error) {
	if config.Enabled && config.Secret == "" {
		return nil, errors.New("exemption secret is required")
	}

	if config.Algorithm == "" {
		config.Algorithm = "HS256"
	}
	if config.Header == "" {
		config.Header = "X-Scan-Exempt"
	}

	var method jwt.SigningMethod
	switch config.Algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, errors.New("unsupported algorithm: " + config.Algorithm)
	}

	return &Handler{
		config:   config,
		method:   method,
		subjects: map[string]bool{},
	}, nil
}

// SetSubjects replaces the allowed-subjects set; hot-reloaded from the
// exemptions rules file.
func (h *Handler) SetSubjects(subjects []string) {
	next := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		next[s] = true
	}
	h.mu.Lock()
	h.subjects = next
	h.mu.Unlock()
}

// Subjects returns the number of allowed subjects currently loaded.
func (h *Handler) Subjects() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subjects)
}

// Exempt reports whether the request may bypass scanning, and the token
// subject when it may.
func (h *Handler) Exempt(r *http.Request) (bool, string) {
	if !h.config.Enabled {
		return false, ""
	}
	for _, skip := range h.config.SkipPaths {
		if strings.HasPrefix(r.URL.Path, skip) {
			return false, ""
		}
	}

	tokenString := h.extractToken(r)
	if tokenString == "" {
		return false, ""
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != h.method {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.config.Secret), nil
	})
	if err != nil || !token.Valid {
		return false, ""
	}

	if h.config.Issuer != "" && claims.Issuer != h.config.Issuer {
		return false, ""
	}
	if h.config.Audience != "" {
		found := false
		for _, aud := range claims.Audience {
			if aud == h.config.Audience {
				found = true
				break
			}
		}
		if !found {
			return false, ""
		}
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return false, ""
	}
	if claims.NotBefore != nil && claims.NotBefore.After(time.Now()) {
		return false, ""
	}

	h.mu.RLock()
	allowed := len(h.subjects) == 0 || h.subjects[claims.Subject]
	h.mu.RUnlock()
	if !allowed {
		return false, ""
	}

	return true, claims.Subject
}

func (h *Handler) extractToken(r *http.Request) string {
	if v := r.Header.Get(h.config.Header); v != "" {
		return v
	}
	auth := r.Header.Get("Authorization")
	parts := strings.Split(auth, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// GenerateToken mints an exemption token for subject, used by ops tooling
// and the test suite.
func (h *Handler) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	if h.config.Issuer != "" {
		claims.Issuer = h.config.Issuer
	}
	if h.config.Audience != "" {
		claims.Audience = []string{h.config.Audience}
	}
	token := jwt.NewWithClaims(h.method, claims)
	return token.SignedString([]byte(h.config.Secret))
}
