package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harukisawai/godchecker/config"
)

func newTestClient() *Client {
	cfg := config.FetchConfig{}
	cfg.SetDefaults()
	return New(cfg)
}

func TestGetSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	body, err := newTestClient().Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("body %q", body)
	}
	if !strings.HasPrefix(gotUA, "GodChecker/") {
		t.Errorf("user agent %q", gotUA)
	}
}

func TestGetNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := newTestClient().Get(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestGetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := newTestClient().Get(context.Background(), url); err == nil {
		t.Fatal("expected error on closed server")
	}
}
