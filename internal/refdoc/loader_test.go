package refdoc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleDoc = `[
	{"name": "Parser", "constructors": [{"name": "Parser"}]},
	{"name": "strings", "functions": [{"name": "pad"}]}
]`

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	loader := NewLoader(5*time.Second, nil)
	doc, err := loader.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Classes) != 1 || len(doc.Modules) != 1 {
		t.Errorf("classes=%d modules=%d, want 1/1", len(doc.Classes), len(doc.Modules))
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(5*time.Second, nil)
	doc, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Classes) != 1 {
		t.Errorf("classes = %d, want 1", len(doc.Classes))
	}
}

func TestLoadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := NewLoader(5*time.Second, nil)
	if _, err := loader.Load(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestLoadParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	loader := NewLoader(5*time.Second, nil)
	if _, err := loader.Load(context.Background(), srv.URL); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(5*time.Second, nil)
	if _, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSingleAttempt(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	loader := NewLoader(5*time.Second, nil)
	loader.Load(context.Background(), srv.URL)
	if attempts != 1 {
		t.Errorf("attempts = %d, want exactly 1 (fail closed, no retry)", attempts)
	}
}
