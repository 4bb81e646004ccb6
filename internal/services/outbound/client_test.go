package outbound

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestSend_JSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if got := r.Header.Get("X-Test"); got != "yes" {
			t.Errorf("expected custom header, got %q", got)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["hello"] != "world" {
			t.Errorf("unexpected request body %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"count":2}`))
	}))
	defer server.Close()

	resp, failure := NewClient().Send(context.Background(), Request{
		Method:     http.MethodPost,
		URL:        server.URL,
		Headers:    map[string]string{"X-Test": "yes"},
		Body:       map[string]string{"hello": "world"},
		ExpectJSON: true,
	})
	if failure != nil {
		t.Fatalf("unexpected failure: %s", failure)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	decoded, ok := resp.JSON.(map[string]any)
	if !ok {
		t.Fatalf("expected decoded object, got %T", resp.JSON)
	}
	if decoded["ok"] != true {
		t.Errorf("expected ok=true, got %v", decoded["ok"])
	}
}

func TestSend_TextSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text"))
	}))
	defer server.Close()

	resp, failure := NewClient().Send(context.Background(), Request{URL: server.URL})
	if failure != nil {
		t.Fatalf("unexpected failure: %s", failure)
	}
	if resp.Text() != "plain text" {
		t.Errorf("expected raw text, got %q", resp.Text())
	}
	if resp.JSON != nil {
		t.Errorf("expected no decoded JSON, got %v", resp.JSON)
	}
}

func TestSend_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
		w.Write([]byte("upstream gave up"))
	}))
	defer server.Close()

	resp, failure := NewClient().Send(context.Background(), Request{URL: server.URL, ExpectJSON: true})
	if resp != nil {
		t.Fatal("expected no response on error status")
	}
	if failure == nil {
		t.Fatal("expected failure")
	}
	if failure.Kind != KindHTTP {
		t.Errorf("expected kind %s, got %s", KindHTTP, failure.Kind)
	}
	if failure.Code != http.StatusGatewayTimeout {
		t.Errorf("expected code 504, got %d", failure.Code)
	}
	if failure.Message != "Gateway Timeout" {
		t.Errorf("expected reason phrase, got %q", failure.Message)
	}
	if failure.RawBody != "upstream gave up" {
		t.Errorf("expected raw body, got %q", failure.RawBody)
	}
}

func TestSend_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	resp, failure := NewClient().Send(context.Background(), Request{URL: server.URL, ExpectJSON: true})
	if resp != nil || failure == nil {
		t.Fatal("expected failure only")
	}
	if failure.Kind != KindParse {
		t.Errorf("expected kind %s, got %s", KindParse, failure.Kind)
	}
}

func TestSend_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	resp, failure := NewClient().Send(context.Background(), Request{URL: server.URL, Timeout: 50 * time.Millisecond})
	if resp != nil || failure == nil {
		t.Fatal("expected failure only")
	}
	if failure.Kind != KindTimeout {
		t.Errorf("expected kind %s, got %s (%s)", KindTimeout, failure.Kind, failure.Message)
	}
}

func TestSend_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp, failure := NewClient().Send(context.Background(), Request{URL: url})
	if resp != nil || failure == nil {
		t.Fatal("expected failure only")
	}
	if failure.Kind != KindConnection {
		t.Errorf("expected kind %s, got %s", KindConnection, failure.Kind)
	}
}

func TestSend_DoesNotRetry(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, failure := NewClient().Send(context.Background(), Request{Method: http.MethodPost, URL: server.URL, Body: map[string]int{"n": 1}})
	if failure == nil {
		t.Fatal("expected failure")
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected exactly one attempt, got %d", got)
	}
}
