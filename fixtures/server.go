// Package fixtures provides a local HTTP server of self-contained HTML pages that
// replicate the portal widgets the page layer has to cope with (blocking overlays,
// ant-design selects, date pickers, re-rendering elements). It exists so that the
// harness's own browser-gated tests can exercise the interaction layer without a
// live deployment.
package fixtures

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"
)

const pagePathPrefix = "/pages/"

// Server hosts registered fixture pages at /pages/<id>. Requests to a page or any
// subpath of it are recorded, so tests can assert that a form submission arrived.
type Server struct {
	server *httptest.Server
	pages  map[string]*Page
	lock   sync.Mutex
}

// Page is one registered fixture page.
type Page struct {
	owner    *Server
	id       string
	handler  http.Handler
	requests chan RequestInfo
	closing  sync.Once
}

// RequestInfo describes one request received by a fixture page.
type RequestInfo struct {
	Method  string
	Subpath string
	Headers http.Header
	Form    url.Values
}

func NewServer() *Server {
	s := &Server{pages: map[string]*Page{}}
	s.server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

func (s *Server) Close() {
	s.lock.Lock()
	pages := make([]*Page, 0, len(s.pages))
	for _, p := range s.pages {
		pages = append(pages, p)
	}
	s.lock.Unlock()
	for _, p := range pages {
		p.Close()
	}
	s.server.Close()
}

// RegisterHTML registers a page that serves a fixed HTML document.
func (s *Server) RegisterHTML(id, html string) *Page {
	return s.RegisterHandler(id, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
}

// RegisterHandler registers a page backed by an arbitrary handler. The handler sees
// only the subpath below the page's base URL.
func (s *Server) RegisterHandler(id string, handler http.Handler) *Page {
	p := &Page{
		owner:    s,
		id:       id,
		handler:  handler,
		requests: make(chan RequestInfo, 16),
	}
	s.lock.Lock()
	s.pages[id] = p
	s.lock.Unlock()
	return p
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, pagePathPrefix) {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, pagePathPrefix)
	id, subpath, _ := strings.Cut(rest, "/")

	s.lock.Lock()
	p := s.pages[id]
	s.lock.Unlock()
	if p == nil {
		http.NotFound(w, r)
		return
	}

	_ = r.ParseForm()
	info := RequestInfo{
		Method:  r.Method,
		Subpath: "/" + subpath,
		Headers: r.Header,
		Form:    r.Form,
	}
	select {
	case p.requests <- info:
	default: // never block serving on a full recording buffer
	}

	// The handler sees only the subpath below the page's base URL.
	r2 := r.Clone(r.Context())
	r2.URL.Path = "/" + subpath
	p.handler.ServeHTTP(w, r2)
}

// URL returns the page's base URL on the fixture server.
func (p *Page) URL() string {
	return p.owner.server.URL + pagePathPrefix + p.id
}

// AwaitRequest waits for the next request to the page.
func (p *Page) AwaitRequest(timeout time.Duration) (RequestInfo, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	select {
	case info, ok := <-p.requests:
		if !ok {
			return RequestInfo{}, fmt.Errorf("fixture page %q was closed", p.id)
		}
		return info, nil
	case <-deadline.C:
		return RequestInfo{}, fmt.Errorf("timed out waiting for a request to fixture page %q", p.id)
	}
}

// Close unregisters the page. Subsequent requests to it receive 404s.
func (p *Page) Close() {
	p.closing.Do(func() {
		p.owner.lock.Lock()
		delete(p.owner.pages, p.id)
		p.owner.lock.Unlock()
		close(p.requests)
	})
}
