package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jarvis-assistant/pkg/gemini"
)

func TestGenerate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-api-key" || r.URL.Query().Get("key") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			SystemInstruction *struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"system_instruction"`
			Contents []struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Contents[len(req.Contents)-1].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.SystemInstruction == nil || req.Contents[0].Role != "user" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello, sir."}]}}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "test-model", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := func(text string) *gemini.Request {
		return &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: text}}}},
		}
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := client.Generate(context.Background(), req("hi"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "Hello, sir." {
			t.Errorf("unexpected text: %q", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 10 || resp.Usage.InputTokens != 7 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		_, err := client.Generate(context.Background(), req("cause_500"))
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected 500 error, got %v", err)
		}
	})

	if client.Model() != "test-model" {
		t.Errorf("unexpected model %q", client.Model())
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %q", client.Model())
	}
}
