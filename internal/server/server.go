// Package server exposes the reel converter over HTTP: the browser page,
// its interaction script, and the conversion endpoint the page calls.
package server

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dagenreels/internal/reel"
)

//go:embed static
var staticFiles embed.FS

// DefaultTitle is the page heading.
const DefaultTitle = "Dagen Reels"

// Converter is the conversion pipeline as seen by the HTTP layer.
// Fetch errors are reported to clients as 400, Render errors as 500.
type Converter interface {
	Fetch(ctx context.Context, url string) (string, error)
	Summarise(ctx context.Context, article string) []string
	Render(ctx context.Context, scenes []string) (*reel.Video, error)
}

// Ensure reel.Pipeline implements Converter.
var _ Converter = (*reel.Pipeline)(nil)

// Options configures the HTTP layer.
type Options struct {
	MaxRenders int // concurrent renders; <= 0 means 1
	Title      string
	Brand      reel.Brand
}

type server struct {
	conv  Converter
	sem   chan struct{}
	page  *template.Template
	title string
	brand reel.Brand
}

// NewServer creates the HTTP handler for conv.
func NewServer(conv Converter, opts Options) http.Handler {
	if opts.MaxRenders <= 0 {
		opts.MaxRenders = 1
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Brand == (reel.Brand{}) {
		opts.Brand = reel.DefaultBrand()
	}

	s := &server{
		conv:  conv,
		sem:   make(chan struct{}, opts.MaxRenders),
		page:  template.Must(template.ParseFS(staticFiles, "static/index.html")),
		title: opts.Title,
		brand: opts.Brand,
	}

	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("server: static assets: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(traced)
	r.Use(logged)

	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))
	r.Get("/api/convert", s.handleConvert)
	r.Get("/convert", s.handleConvert)
	r.Get("/health", HealthHandler().ServeHTTP)
	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Title string
		Brand reel.Brand
	}{s.title, s.brand}
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("server: render index: %v", err)
	}
}
