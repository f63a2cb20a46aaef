package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

func TestOllamaClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != "llama3" || req.Prompt != "hello" || req.Stream {
			t.Errorf("unexpected payload: %+v", req)
		}
		_, _ = w.Write([]byte(`{"response":"  hi there \n","done":true}`))
	}))
	defer srv.Close()

	out, err := NewOllamaClient(srv.URL+"/", time.Second).Generate(context.Background(), "llama3", "hello")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if out != "hi there" {
		t.Fatalf("expected trimmed output, got %q", out)
	}
}

func TestOllamaClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'nope' not found"}`))
	}))
	defer srv.Close()

	_, err := NewOllamaClient(srv.URL, time.Second).Generate(context.Background(), "nope", "x")
	var be *domain.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if be.StatusCode != http.StatusNotFound || be.Detail != `Ollama error: {"error":"model 'nope' not found"}` {
		t.Fatalf("unexpected error: %+v", be)
	}
}

func TestOllamaClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := NewOllamaClient(url, time.Second).Generate(context.Background(), "m", "p"); err == nil {
		t.Fatalf("expected connection error")
	}
}

func TestOllamaClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/version" {
			_, _ = w.Write([]byte(`{"version":"0.1.0"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if err := NewOllamaClient(srv.URL, time.Second).Ping(context.Background()); err != nil {
		t.Fatalf("Ping error: %v", err)
	}
}
