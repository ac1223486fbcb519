package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProxyClient_GenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Prompt != "say hi" {
			t.Errorf("unexpected prompt %q", req.Prompt)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "hi there"}},
				}},
			},
		})
	}))
	defer srv.Close()

	client := NewProxyClient(srv.URL)
	got, err := client.GenerateContent(context.Background(), "say hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi there" {
		t.Errorf("expected %q, got %q", "hi there", got)
	}
}

func TestProxyClient_GenerateContent_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewProxyClient(srv.URL)
	if _, err := client.GenerateContent(context.Background(), "say hi"); err == nil {
		t.Fatal("expected an error for non-200 response")
	}
}

func TestProxyClient_GenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	client := NewProxyClient(srv.URL)
	if _, err := client.GenerateContent(context.Background(), "say hi"); err == nil {
		t.Fatal("expected an error for empty candidates")
	}
}
