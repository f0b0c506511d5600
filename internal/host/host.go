// Package host serves the single page application.
//
// The router writes logical paths into the browser history, so any path under
// the base can be requested directly (reload, shared link).  Those requests get
// the shell page and the client side router takes over from there.
package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tdewolff/minify/v2"
	htmlmin "github.com/tdewolff/minify/v2/html"

	"github.com/vgapps/usertable"
)

// Config configures a Server.
type Config struct {
	Addr    string // listen address, e.g. ":8844"
	BaseURL string // path prefix the app is served under
	Dir     string // directory holding main.wasm, wasm_exec.js and optionally index.html
	Minify  bool   // minify the shell page
}

// Server serves the files in Dir below BaseURL.
type Server struct {
	cfg   Config
	base  string // normalized
	dir   string // absolute
	shell []byte
	h     http.Handler
}

// New returns a Server for cfg.  The shell page is read and prepared here.
func New(cfg Config) (*Server, error) {

	if err := (usertable.Config{BaseURL: cfg.BaseURL}).Validate(); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	s := &Server{
		cfg:  cfg,
		base: usertable.NormalizeBase(cfg.BaseURL),
		dir:  dir,
	}

	s.shell, err = s.loadShell()
	if err != nil {
		return nil, err
	}

	s.h = s.routes()

	return s, nil
}

// Handler returns the http.Handler of the server.
func (s *Server) Handler() http.Handler { return s.h }

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if s.base == "" {
		r.Get("/*", s.serveApp)
		return r
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, s.base+"/", http.StatusFound)
	})
	r.Get(s.base, s.serveApp)
	r.Get(s.base+"/*", s.serveApp)

	return r
}

// serveApp serves an existing file, anything else gets the shell page.
func (s *Server) serveApp(w http.ResponseWriter, req *http.Request) {

	rel := strings.TrimPrefix(req.URL.Path, s.base)
	rel = path.Clean("/" + rel)

	if rel != "/" && rel != "/index.html" {
		fp := filepath.Join(s.dir, filepath.FromSlash(rel))
		if fi, err := os.Stat(fp); err == nil && fi.Mode().IsRegular() {
			if strings.HasSuffix(fp, ".wasm") {
				w.Header().Set("Content-Type", "application/wasm")
			}
			http.ServeFile(w, req, fp)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(s.shell); err != nil {
		log.Printf("host: writing page for %s: %v", req.URL.Path, err)
	}
}

// loadShell reads Dir/index.html, or renders the built-in page if there is none.
func (s *Server) loadShell() ([]byte, error) {

	b, err := os.ReadFile(filepath.Join(s.dir, "index.html"))
	if errors.Is(err, os.ErrNotExist) {
		var buf bytes.Buffer
		err = shellTmpl.Execute(&buf, map[string]interface{}{
			"Base": s.base + "/",
		})
		if err != nil {
			return nil, err
		}
		b = buf.Bytes()
	} else if err != nil {
		return nil, err
	}

	if !s.cfg.Minify {
		return b, nil
	}

	m := minify.New()
	m.AddFunc("text/html", htmlmin.Minify)
	out, err := m.Bytes("text/html", b)
	if err != nil {
		log.Printf("host: minify warning: %v (using original)", err)
		return b, nil
	}
	return out, nil
}

// Run serves on cfg.Addr until ctx is done, then shuts down.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving %s at %s%s/", s.dir, s.cfg.Addr, s.base)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var shellTmpl = template.Must(template.New("index.html").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<base href="{{.Base}}">
<title>Users</title>
</head>
<body>
<div id="vugu_mount_point">
  <p>Loading...</p>
</div>
<script src="wasm_exec.js"></script>
<script>
var wasmSupported = (typeof WebAssembly === "object");
if (wasmSupported) {
	var go = new Go();
	WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject).then(function(result) {
		go.run(result.instance);
	});
} else {
	document.getElementById("vugu_mount_point").innerHTML = "This application requires WebAssembly support.";
}
</script>
</body>
</html>
`))
