package dev

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/crel-dev/crel/internal/config"
)

func newTestProject(t *testing.T, configJSON string, pages map[string]string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}
	for name, body := range pages {
		p := filepath.Join(dir, "pages", name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
	return cfg
}

var testPages = map[string]string{
	"index.yaml": "- doctype: html\n- tag: html\n  children:\n    - tag: body\n      children:\n        - tag: h1\n          children: [Home]\n",
	"about.yaml": "- tag: p\n  children: [About]\n",
	"bad.yaml":   "- tag: blink\n",
	"_nav.yaml":  "- tag: nav\n",
}

func newTestServer(t *testing.T, configJSON string) (*Server, *httptest.Server) {
	t.Helper()
	cfg := newTestProject(t, configJSON, testPages)
	srv := NewServer(ServerOptions{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string) (int, string, http.Header) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body), resp.Header
}

func TestServer_Pages(t *testing.T) {
	_, ts := newTestServer(t, `{"dev": {"hotReload": false}}`)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "<!doctype html><html><body><h1>Home</h1></body></html>"},
		{"/about", http.StatusOK, "<p>About</p>"},
		{"/about.html", http.StatusOK, "<p>About</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body, header := get(t, ts.URL+tt.path)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if ct := header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestServer_Errors(t *testing.T) {
	_, ts := newTestServer(t, `{"dev": {"hotReload": false}}`)

	status, body, _ := get(t, ts.URL+"/missing")
	if status != http.StatusNotFound || !strings.Contains(body, "Page Not Found") {
		t.Errorf("/missing = %d %q", status, body)
	}
	if !strings.Contains(body, "<code>/missing</code>") {
		t.Errorf("404 page should name the path: %q", body)
	}

	status, body, _ = get(t, ts.URL+"/bad")
	if status != http.StatusInternalServerError {
		t.Errorf("/bad status = %d", status)
	}
	if !strings.Contains(body, "E021") || !strings.Contains(body, "bad.yaml") {
		t.Errorf("error page should show the coded error: %q", body)
	}

	// Partials are never built, so they are not served either.
	if status, _, _ := get(t, ts.URL+"/_nav"); status != http.StatusNotFound {
		t.Errorf("/_nav status = %d, want 404", status)
	}

	// The reload endpoint is not mounted without hot reload.
	if status, _, _ := get(t, ts.URL+ReloadPath); status != http.StatusNotFound {
		t.Errorf("%s status = %d, want 404", ReloadPath, status)
	}
}

func TestServer_InjectsReloadScript(t *testing.T) {
	_, ts := newTestServer(t, `{}`)

	_, body, _ := get(t, ts.URL+"/")
	if !strings.HasSuffix(body, DevClientScript+"</body></html>") {
		t.Errorf("script not injected before </body>: %q", body)
	}

	_, body, _ = get(t, ts.URL+"/bad")
	if !strings.Contains(body, "/_crel/reload") {
		t.Errorf("error page should reload when fixed")
	}
}

func TestServer_Metrics(t *testing.T) {
	_, ts := newTestServer(t, `{"dev": {"hotReload": false}}`)
	get(t, ts.URL+"/about")

	status, body, _ := get(t, ts.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("/metrics status = %d", status)
	}
	for _, name := range []string{"crel_pages_served_total", "crel_renders_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("/metrics missing %s", name)
		}
	}

	_, off := newTestServer(t, `{"dev": {"hotReload": false, "metrics": false}}`)
	if status, _, _ := get(t, off.URL+"/metrics"); status != http.StatusNotFound {
		t.Errorf("/metrics with metrics off status = %d, want 404", status)
	}
}

func TestServer_LiveReload(t *testing.T) {
	srv, ts := newTestServer(t, `{}`)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.reloadServer.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	pages := srv.config.PagesPath()
	read := func() ReloadMessage {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage() error: %v", err)
		}
		var msg ReloadMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("bad message %q: %v", data, err)
		}
		return msg
	}

	srv.handleChanges([]Change{{Path: filepath.Join(pages, "bad.yaml"), Type: ChangePage}})
	msg := read()
	if msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "E021") {
		t.Errorf("bad page message = %+v", msg)
	}

	srv.handleChanges([]Change{{Path: filepath.Join(pages, "about.yaml"), Type: ChangePage}})
	if msg := read(); msg.Type != ReloadTypeClear {
		t.Errorf("first message = %+v, want clear", msg)
	}
	if msg := read(); msg.Type != ReloadTypeFull {
		t.Errorf("second message = %+v, want reload", msg)
	}
}

func TestInjectScript(t *testing.T) {
	s := DevClientScript
	tests := []struct {
		in, want string
	}{
		{"<html><body><p>x</p></body></html>", "<html><body><p>x</p>" + s + "</body></html>"},
		{"<html><p>x</p></html>", "<html><p>x</p>" + s + "</html>"},
		{"<p>x</p>", "<p>x</p>" + s},
	}
	for _, tt := range tests {
		if got := string(injectScript([]byte(tt.in))); got != tt.want {
			t.Errorf("injectScript(%q) = %q", tt.in, got)
		}
	}
}

func TestReloadMessage_JSON(t *testing.T) {
	data, err := json.Marshal(ReloadMessage{Type: ReloadTypeFull})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"reload"}` {
		t.Errorf("reload message = %s", data)
	}
}

func TestCollectWatchPaths(t *testing.T) {
	cfg := newTestProject(t, `{"pages": "."}`, nil)
	paths := CollectWatchPaths(cfg)
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	if paths[0] != filepath.Clean(cfg.Dir()) {
		t.Errorf("pages path = %q, want %q", paths[0], cfg.Dir())
	}
}
