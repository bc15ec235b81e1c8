package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roa-expert-system/pkg/gemini"
)

func newMockServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Mock commands embedded in the prompt text
		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_empty":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "  mocked response string\n" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
}

func TestClient_GenerateContent(t *testing.T) {
	ts := newMockServer(t)
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate")
		}
		if resp.Candidates[0].Content.Parts[0].Text != "  mocked response string\n" {
			t.Errorf("unexpected content response: %q", resp.Candidates[0].Content.Parts[0].Text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestClient_GenerateText(t *testing.T) {
	ts := newMockServer(t)
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Trims reply", func(t *testing.T) {
		got, err := client.GenerateText(context.Background(), "Hello world", 0.7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "mocked response string" {
			t.Errorf("expected trimmed reply, got %q", got)
		}
	})

	t.Run("Empty candidates", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_empty", 0)
		if err != gemini.ErrEmptyCandidates {
			t.Errorf("expected ErrEmptyCandidates, got %v", err)
		}
	})
}
