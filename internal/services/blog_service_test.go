package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/services/outbound"
)

func newTestBlogService(url string) *BlogService {
	return NewBlogService(config.GroqConfig{
		APIURL:  url,
		APIKey:  "groq-test-key",
		Model:   "openai/gpt-oss-20b",
		Timeout: 5 * time.Second,
	}, outbound.NewClient())
}

func envelopeWithContent(content string) string {
	encoded, _ := json.Marshal(content)
	return `{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":` + string(encoded) + `},"finish_reason":"stop"}]}`
}

func TestBlogService_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer groq-test-key" {
			t.Errorf("unexpected authorization %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		if body["model"] != "openai/gpt-oss-20b" {
			t.Errorf("unexpected model %v", body["model"])
		}
		if body["temperature"] != 0.59 {
			t.Errorf("expected temperature 0.59, got %v", body["temperature"])
		}
		if body["top_p"] != float64(1) {
			t.Errorf("expected top_p 1, got %v", body["top_p"])
		}
		if body["max_completion_tokens"] != float64(8192) {
			t.Errorf("expected max tokens 8192, got %v", body["max_completion_tokens"])
		}
		if body["stream"] != false {
			t.Errorf("expected stream false, got %v", body["stream"])
		}
		if format, _ := body["response_format"].(map[string]any); format["type"] != "json_object" {
			t.Errorf("unexpected response_format %v", body["response_format"])
		}

		messages, _ := body["messages"].([]any)
		if len(messages) != 2 {
			t.Errorf("expected 2 messages, got %d", len(messages))
			return
		}
		system := messages[0].(map[string]any)
		user := messages[1].(map[string]any)
		if system["role"] != "system" || !strings.Contains(system["content"].(string), "STRICT JSON") {
			t.Errorf("unexpected system message %v", system)
		}
		if user["role"] != "user" || user["content"] != `generate article on this title= X, details= "Y details"` {
			t.Errorf("unexpected user message %v", user["content"])
		}

		w.Write([]byte(envelopeWithContent(`{"title":"X","content":"Y"}`)))
	}))
	defer server.Close()

	article := newTestBlogService(server.URL).Generate(context.Background(), "X", "Y details")
	if article.Error {
		t.Fatalf("unexpected error: %s", article.Message)
	}
	if article.Title != "X" || article.Content != "Y" {
		t.Errorf("unexpected article %+v", article)
	}
}

func TestBlogService_Generate_ParseFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		stage string
	}{
		{name: "content is not json", body: envelopeWithContent("not json"), stage: StageContent},
		{name: "content is a json array", body: envelopeWithContent(`["title","content"]`), stage: StageContent},
		{name: "content is null", body: envelopeWithContent("null"), stage: StageContent},
		{name: "content is an empty object", body: envelopeWithContent(`{}`), stage: StageContent},
		{name: "content has unrelated keys", body: envelopeWithContent(`{"foo":1}`), stage: StageContent},
		{name: "content is missing body", body: envelopeWithContent(`{"title":"X"}`), stage: StageContent},
		{name: "content title is null", body: envelopeWithContent(`{"title":null,"content":"Y"}`), stage: StageContent},
		{name: "envelope is not json", body: "<html>bad gateway</html>", stage: StageEnvelope},
		{name: "no choices", body: `{"choices":[]}`, stage: StageEnvelope},
		{name: "null content", body: `{"choices":[{"message":{"content":null}}]}`, stage: StageEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			article := newTestBlogService(server.URL).Generate(context.Background(), "X", "Y")
			if !article.Error {
				t.Fatalf("expected error, got %+v", article)
			}
			if article.Message != "Failed to parse LLM JSON response." {
				t.Errorf("unexpected message %q", article.Message)
			}
			if article.Stage != tt.stage {
				t.Errorf("expected stage %q, got %q", tt.stage, article.Stage)
			}
			if article.Title != "" || article.Content != "" {
				t.Errorf("error article must not carry article fields: %+v", article)
			}

			encoded, _ := json.Marshal(article)
			if string(encoded) != `{"error":true,"message":"Failed to parse LLM JSON response."}` {
				t.Errorf("unexpected encoded failure %s", encoded)
			}
		})
	}
}

func TestBlogService_Generate_EmptyStringsAreAnArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(envelopeWithContent(`{"title":"","content":""}`)))
	}))
	defer server.Close()

	article := newTestBlogService(server.URL).Generate(context.Background(), "X", "Y")
	if article.Error {
		t.Fatalf("unexpected error: %s", article.Message)
	}
	encoded, _ := json.Marshal(article)
	if string(encoded) != `{"title":"","content":""}` {
		t.Errorf("article must always carry both keys, got %s", encoded)
	}
}

func TestBlogService_Generate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"over capacity"}}`))
	}))
	defer server.Close()

	article := newTestBlogService(server.URL).Generate(context.Background(), "X", "Y")
	if !article.Error {
		t.Fatal("expected error")
	}
	if article.Message != "API Error: 503 - Service Unavailable" {
		t.Errorf("unexpected message %q", article.Message)
	}
}

func TestBlogService_Generate_Non200Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(envelopeWithContent(`{"title":"X","content":"Y"}`)))
	}))
	defer server.Close()

	article := newTestBlogService(server.URL).Generate(context.Background(), "X", "Y")
	if !article.Error || article.Message != "API Error: 202 - Accepted" {
		t.Errorf("unexpected article %+v", article)
	}
}

func TestBlogService_Generate_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	article := newTestBlogService(url).Generate(context.Background(), "X", "Y")
	if !article.Error {
		t.Fatal("expected error")
	}
	if article.Message == "" || article.Message == ParseFailureMessage {
		t.Errorf("expected transport error message, got %q", article.Message)
	}
	if article.Kind != string(outbound.KindConnection) {
		t.Errorf("expected connection kind, got %q", article.Kind)
	}
}
