package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

func TestClient_Login_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["username"] != "buyer1" || body["password"] != "pass123" {
			t.Fatalf("unexpected body: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"demo-token-1","username":"buyer1","fullName":"Alice Johnson","role":"Buyer","email":"alice.johnson@demo.com"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", Timeout: time.Second})
	res, err := c.Login(context.Background(), "buyer1", "pass123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.FullName != "Alice Johnson" || res.Token != "demo-token-1" || res.Role != "Buyer" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestClient_Login_NonSuccessStatus(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusBadRequest, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
		}))

		c := NewClient(Config{BaseURL: srv.URL})
		_, err := c.Login(context.Background(), "buyer1", "bad")
		srv.Close()

		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("status %d: expected ErrInvalidCredentials, got %v", code, err)
		}
	}
}

func TestClient_Login_MalformedBody(t *testing.T) {
	bodies := []string{"", "not json", `{"token":"t"}`}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		c := NewClient(Config{BaseURL: srv.URL})
		_, err := c.Login(context.Background(), "buyer1", "pass123")
		srv.Close()

		if !errors.Is(err, domain.ErrUnexpectedResponse) {
			t.Fatalf("body %q: expected ErrUnexpectedResponse, got %v", body, err)
		}
	}
}

func TestClient_Login_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url, Timeout: time.Second})
	if _, err := c.Login(context.Background(), "buyer1", "pass123"); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClient_Login_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if _, err := c.Login(context.Background(), "buyer1", "pass123"); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable on timeout, got %v", err)
	}
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Identity.API is running"))
	}))
	defer srv.Close()

	if err := NewClient(Config{BaseURL: srv.URL}).Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
