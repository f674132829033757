// Package pastebintest provides an in-process fake of the pastebin.com API.
package pastebintest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/2kybe3/kcli/internal/logger"
)

// APIPath is the path the fake serves, mirroring the real endpoint.
const APIPath = "/api/api_post.php"

// Paste is one upload the fake accepted.
type Paste struct {
	Key     string
	Option  string
	Content string
}

// Server is a fake pastebin.com API.
//
// By default it validates the form like the real service and answers with a
// paste URL or a "Bad API request" message. Respond forces a fixed body.
type Server struct {
	*httptest.Server

	validKey string

	mu      sync.Mutex
	pastes  []Paste
	forced  *string
	handler http.HandlerFunc
}

// Option customizes a fake Server.
type Option func(*options)

type options struct {
	log logger.Logger
}

// WithLogger logs one line per request the fake serves.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewServer starts a fake API that accepts validKey.
// Call Close when done.
func NewServer(validKey string, opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{validKey: validKey}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if o.log != nil {
		r.Use(requestLog(o.log))
	}
	r.Use(middleware.AllowContentType("application/x-www-form-urlencoded"))
	r.Post(APIPath, s.handlePost)

	s.Server = httptest.NewServer(r)
	return s
}

// Endpoint is the full URL to pass to pastebincom.WithEndpoint.
func (s *Server) Endpoint() string {
	return s.URL + APIPath
}

// Client returns an HTTP client that sends every request to the fake,
// whatever host it names. Use it when the endpoint cannot be overridden.
func (s *Server) Client() *http.Client {
	target, _ := url.Parse(s.URL)
	return &http.Client{Transport: redirectTransport{target: target, next: s.Server.Client().Transport}}
}

type redirectTransport struct {
	target *url.URL
	next   http.RoundTripper
}

func (rt redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = rt.target.Scheme
	clone.URL.Host = rt.target.Host
	clone.Host = rt.target.Host
	return rt.next.RoundTrip(clone)
}

// Respond makes every following request answer with body (HTTP 200).
func (s *Server) Respond(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forced = &body
}

// Handle replaces the API handler entirely.
func (s *Server) Handle(h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = h
}

// Pastes returns a copy of every form the fake received.
func (s *Server) Pastes() []Paste {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Paste, len(s.pastes))
	copy(out, s.pastes)
	return out
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	custom := s.handler
	s.mu.Unlock()
	if custom != nil {
		custom(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := Paste{
		Key:     r.PostForm.Get("api_dev_key"),
		Option:  r.PostForm.Get("api_option"),
		Content: r.PostForm.Get("api_paste_code"),
	}

	s.mu.Lock()
	s.pastes = append(s.pastes, p)
	n := len(s.pastes)
	forced := s.forced
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if forced != nil {
		_, _ = w.Write([]byte(*forced))
		return
	}

	switch {
	case p.Key != s.validKey:
		_, _ = w.Write([]byte("Bad API request, invalid api_dev_key"))
	case p.Option != "paste":
		_, _ = w.Write([]byte("Bad API request, invalid api_option"))
	case p.Content == "":
		_, _ = w.Write([]byte("Bad API request, api_paste_code was empty"))
	default:
		_, _ = fmt.Fprintf(w, "https://pastebin.com/fake%04d", n)
	}
}
