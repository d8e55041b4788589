package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientGet(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	client := NewClient(0, "")
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !strings.Contains(string(body), "ok") {
		t.Errorf("unexpected body: %q", body)
	}
	if gotAgent != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, DefaultUserAgent)
	}
}

func TestClientGetCustomUserAgent(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := NewClient(time.Second, "kokomo-events-test/1.0")
	if _, err := client.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotAgent != "kokomo-events-test/1.0" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
}

func TestClientGetNon2xxNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(time.Second, "test")
	_, err := client.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "unexpected status code: 404") {
		t.Errorf("unexpected error: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected exactly 1 request, got %d", n)
	}
}

func TestClientGetRetriesTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// Drop the connection mid-response to force a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("server does not support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatalf("hijack: %v", err)
			}
			conn.Close()
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "test")
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error after retry: %v", err)
	}
	if string(body) != "recovered" {
		t.Errorf("body = %q, want %q", body, "recovered")
	}
	if n := atomic.LoadInt32(&calls); n < 2 {
		t.Errorf("expected a retry, got %d request(s)", n)
	}
}

func TestClientGetCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(time.Second, "test")
	if _, err := client.Get(ctx, srv.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestClientDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1 class="title">Fall Festival</h1></body></html>`))
	}))
	defer srv.Close()

	client := NewClient(time.Second, "test")
	doc, err := client.Document(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if got := doc.Find("h1.title").Text(); got != "Fall Festival" {
		t.Errorf("selector text = %q, want %q", got, "Fall Festival")
	}
}
