package exempt

import (
	"net/http/httptest"
	"testing"
	"time"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(Config{
		Enabled:   true,
		Secret:    "test-secret",
		Algorithm: "HS256",
		Issuer:    "injectwaf",
	})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestExemptValidToken(t *testing.T) {
	h := newTestHandler(t)
	token, err := h.GenerateToken("ci-scanner", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Scan-Exempt", token)

	ok, subject := h.Exempt(r)
	if !ok || subject != "ci-scanner" {
		t.Errorf("Exempt = (%v, %q), want (true, ci-scanner)", ok, subject)
	}
}

func TestExemptMissingToken(t *testing.T) {
	h := newTestHandler(t)
	r := httptest.NewRequest("GET", "/", nil)
	if ok, _ := h.Exempt(r); ok {
		t.Error("request without token exempted")
	}
}

func TestExemptBadSignature(t *testing.T) {
	h := newTestHandler(t)
	other, err := NewHandler(Config{Enabled: true, Secret: "other-secret", Issuer: "injectwaf"})
	if err != nil {
		t.Fatal(err)
	}
	token, err := other.GenerateToken("ci-scanner", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Scan-Exempt", token)
	if ok, _ := h.Exempt(r); ok {
		t.Error("token signed with wrong secret exempted")
	}
}

func TestExemptExpiredToken(t *testing.T) {
	h := newTestHandler(t)
	token, err := h.GenerateToken("ci-scanner", -time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Scan-Exempt", token)
	if ok, _ := h.Exempt(r); ok {
		t.Error("expired token exempted")
	}
}

func TestExemptSubjects(t *testing.T) {
	h := newTestHandler(t)
	h.SetSubjects([]string{"trusted"})

	token, err := h.GenerateToken("untrusted", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Scan-Exempt", token)
	if ok, _ := h.Exempt(r); ok {
		t.Error("subject outside the allow-list exempted")
	}

	token, err = h.GenerateToken("trusted", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("X-Scan-Exempt", token)
	if ok, _ := h.Exempt(r); !ok {
		t.Error("allow-listed subject rejected")
	}
}

func TestExemptSkipPaths(t *testing.T) {
	h, err := NewHandler(Config{
		Enabled:   true,
		Secret:    "test-secret",
		SkipPaths: []string{"/login"},
	})
	if err != nil {
		t.Fatal(err)
	}
	token, err := h.GenerateToken("ci-scanner", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest("POST", "/login", nil)
	r.Header.Set("X-Scan-Exempt", token)
	if ok, _ := h.Exempt(r); ok {
		t.Error("skip path honored an exemption")
	}
}

func TestDisabledHandler(t *testing.T) {
	h, err := NewHandler(Config{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest("GET", "/", nil)
	if ok, _ := h.Exempt(r); ok {
		t.Error("disabled handler exempted a request")
	}
}
