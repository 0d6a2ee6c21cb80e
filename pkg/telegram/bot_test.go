package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestBot(t *testing.T) {
	var (
		mu    sync.Mutex
		texts []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/bottest-token/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req["url"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			mu.Lock()
			texts = append(texts, req.Text)
			mu.Unlock()
			w.Write([]byte(`{"ok": true}`))
			return
		}

		if strings.HasSuffix(path, "/sendChatAction") {
			var req SendChatActionRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Action != ActionTyping {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "bad action"}`))
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	b, err := New(Config{Token: "test-token", APIBase: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := b.SetWebhook(ctx, "https://example.com/webhook"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := b.SetWebhook(ctx, "cause_error")
		if !errors.Is(err, ErrAPI) || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := b.SetWebhook(ctx, "cause_500"); !errors.Is(err, ErrAPI) {
			t.Fatalf("expected api error for empty 500, got: %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := b.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := b.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage Splits Long Text", func(t *testing.T) {
		mu.Lock()
		texts = nil
		mu.Unlock()

		long := strings.Repeat("a", MaxMessageLength+10)
		if err := b.SendMessage(ctx, 12345, long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mu.Lock()
		defer mu.Unlock()
		if len(texts) != 2 || len(texts[0]) != MaxMessageLength || len(texts[1]) != 10 {
			t.Fatalf("unexpected chunks: %d", len(texts))
		}
	})

	t.Run("SendChatAction", func(t *testing.T) {
		if err := b.SendChatAction(ctx, 12345, ActionTyping); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SendChatAction(ctx, 12345, "dancing"); err == nil {
			t.Fatalf("expected error for unknown action")
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := b.SendMessage(cctx, 12345, "Hello"); err == nil {
			t.Fatalf("expected error for cancelled context")
		}
	})

	t.Run("Wrong Token", func(t *testing.T) {
		other, _ := New(Config{Token: "other", APIBase: ts.URL})
		if err := other.SendMessage(ctx, 1, "hi"); err == nil {
			t.Errorf("expected failure for unknown bot path")
		}
	})
}

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(Config{Token: " "}); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestSplitText(t *testing.T) {
	text := strings.Repeat("x", 7) + "\n" + strings.Repeat("y", 5)
	chunks := splitText(text, 10)
	if len(chunks) != 2 || chunks[0] != strings.Repeat("x", 7)+"\n" || chunks[1] != "yyyyy" {
		t.Fatalf("unexpected chunks: %q", chunks)
	}

	if got := splitText("short", 10); len(got) != 1 || got[0] != "short" {
		t.Fatalf("unexpected chunks: %q", got)
	}
}
