package devwebserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestServeIndex(t *testing.T) {
	server := &Server{}
	for _, path := range []string{"/", "/index.html"} {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "main.wasm") {
			t.Fatalf("%s: expected index.html to load main.wasm", path)
		}
	}
}

func TestServeUnknownPath(t *testing.T) {
	server := &Server{}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret.txt", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBuildArgs(t *testing.T) {
	goldenTests := []struct {
		Tags     string
		Expected []string
	}{
		{
			Expected: []string{"build", "-o", "out/main.wasm", "./cmd/tictactoe-client"},
		},
		{
			Tags:     "headless",
			Expected: []string{"build", "-o", "out/main.wasm", "-tags", "headless", "./cmd/tictactoe-client"},
		},
	}
	for _, test := range goldenTests {
		got := buildArgs("out/main.wasm", test.Tags, "./cmd/tictactoe-client")
		if !reflect.DeepEqual(got, test.Expected) {
			t.Errorf("tags %q: expected %v, got %v", test.Tags, test.Expected, got)
		}
	}
}

func TestFindWasmExecJS(t *testing.T) {
	goroot := t.TempDir()
	if _, err := findWasmExecJS(goroot); err == nil {
		t.Fatalf("expected an error for an empty GOROOT")
	}

	legacy := filepath.Join(goroot, "misc", "wasm", "wasm_exec.js")
	if err := os.MkdirAll(filepath.Dir(legacy), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(legacy, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := findWasmExecJS(goroot); err != nil || got != legacy {
		t.Fatalf("expected %s, got %s %v", legacy, got, err)
	}

	current := filepath.Join(goroot, "lib", "wasm", "wasm_exec.js")
	if err := os.MkdirAll(filepath.Dir(current), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(current, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := findWasmExecJS(goroot); err != nil || got != current {
		t.Fatalf("expected lib/wasm to win, got %s %v", got, err)
	}
}
