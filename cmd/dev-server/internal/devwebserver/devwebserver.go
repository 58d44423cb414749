// devwebserver serves a wasm build of the client to the browser, rebuilding
// main.wasm whenever the page asks for it.
package devwebserver

import (
	_ "embed"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tictactoe-client/internal/log"
	"golang.org/x/tools/go/packages"
)

const (
	// DefaultPackage is the client binary that gets built to wasm
	DefaultPackage = "github.com/silbinarywolf/tictactoe-client/cmd/tictactoe-client"
)

//go:embed index.html
var indexHTML []byte

var logger = log.New("devwebserver")

type Options struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "headless"
	// Package is the import path of the main package to build
	Package   string
}

type Server struct {
	options    Options
	packageDir string
	wasmJSPath string

	mu        sync.Mutex
	outputDir string
}

// New resolves the client package and the wasm_exec.js shipped with the
// Go toolchain. Nothing is built until main.wasm is requested.
func New(options Options) (*Server, error) {
	if options.Port == "" {
		options.Port = ":8080"
	}
	if options.Directory == "" {
		options.Directory = "."
	}
	if options.Package == "" {
		options.Package = DefaultPackage
	}
	packageDir, err := computePackageDir(options.Directory, options.Package)
	if err != nil {
		return nil, err
	}
	wasmJSPath, err := findWasmExecJS(runtime.GOROOT())
	if err != nil {
		return nil, err
	}
	return &Server{
		options:    options,
		packageDir: packageDir,
		wasmJSPath: wasmJSPath,
	}, nil
}

// ListenAndServe blocks until the server fails
func (server *Server) ListenAndServe() error {
	logger.Noticef("Listening on http://localhost%s...", server.options.Port)
	return http.ListenAndServe(server.options.Port, server)
}

func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upath := strings.TrimPrefix(r.URL.Path, "/")
	if upath == "" || strings.HasSuffix(upath, "/") {
		upath += "index.html"
	}

	switch upath {
	case "index.html":
		logger.Debug("serving index.html")
		http.ServeContent(w, r, "index.html", time.Time{}, strings.NewReader(string(indexHTML)))
	case "wasm_exec.js":
		logger.Debug("serving wasm_exec.js: " + server.wasmJSPath)
		http.ServeFile(w, r, server.wasmJSPath)
	case "main.wasm":
		output, err := server.build()
		if err != nil {
			logger.Error(err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		f, err := os.Open(output)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeContent(w, r, "main.wasm", time.Now(), f)
	default:
		http.NotFound(w, r)
	}
}

// build compiles the client for js/wasm and returns the output path
func (server *Server) build() (string, error) {
	server.mu.Lock()
	defer server.mu.Unlock()

	output, err := server.ensureOutputDir()
	if err != nil {
		return "", err
	}
	output = filepath.Join(output, "main.wasm")
	args := buildArgs(output, server.options.Tags, server.packageDir)
	logger.Info("go ", strings.Join(args, " "))
	cmdBuild := exec.Command(gobin(), args...)
	cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmdBuild.Dir = server.options.Directory
	out, err := cmdBuild.CombinedOutput()
	if err != nil {
		return "", errors.Wrapf(err, "go build failed\n%s", out)
	}
	if len(out) > 0 {
		logger.Info(string(out))
	}
	return output, nil
}

func buildArgs(output, tags, pkg string) []string {
	args := []string{"build", "-o", output}
	if tags != "" {
		args = append(args, "-tags", tags)
	}
	return append(args, pkg)
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

func (server *Server) ensureOutputDir() (string, error) {
	if server.outputDir != "" {
		return server.outputDir, nil
	}
	tmp, err := os.MkdirTemp("", "tictactoe-dev-server")
	if err != nil {
		return "", err
	}
	server.outputDir = tmp
	return server.outputDir, nil
}

// Close removes the build output
func (server *Server) Close() error {
	server.mu.Lock()
	defer server.mu.Unlock()
	if server.outputDir == "" {
		return nil
	}
	err := os.RemoveAll(server.outputDir)
	server.outputDir = ""
	return err
}

// computePackageDir finds the source directory of a main package
func computePackageDir(dir, packagePath string) (string, error) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  currentDir,
	}
	pkgs, err := packages.Load(cfg, packagePath)
	if err != nil {
		return "", errors.Wrapf(err, "unable to load package %s", packagePath)
	}
	if len(pkgs) == 0 {
		return "", errors.New("unable to find package: " + packagePath)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return "", errors.Errorf("unable to load package %s: %v", packagePath, pkg.Errors[0])
	}
	if pkg.Name != "main" {
		return "", errors.Errorf("package %s is %q, not a main package", packagePath, pkg.Name)
	}
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("cannot find *.go files in: " + packagePath)
	}
	return filepath.Dir(pkg.GoFiles[0]), nil
}

// findWasmExecJS looks in lib/wasm first, older toolchains kept it in misc/wasm
func findWasmExecJS(goroot string) (string, error) {
	const baseName = "wasm_exec.js"
	for _, dir := range []string{"lib", "misc"} {
		path := filepath.Join(goroot, dir, "wasm", baseName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Errorf("cannot find %s in %s", baseName, goroot)
}
