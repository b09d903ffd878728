package http

import (
	"bytes"
	"html/template"
	nethttp "net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/claes/slideshow/internal/media"
	"github.com/claes/slideshow/internal/model"
	"github.com/claes/slideshow/internal/slides"
)

// Options configures NewServer.
type Options struct {
	Source    slides.Source
	StaticDir string // served under /static/
	AudioDir  string // searched for the background track
	Logger    *zap.Logger
}

type server struct {
	source    slides.Source
	staticDir string
	audioDir  string
	logger    *zap.Logger
	tpl       *template.Template
}

type pageData struct {
	Slides []model.Slide
	Audio  string // escaped /static/ URL, empty when there is no track
}

// NewServer creates the slideshow HTTP handler.
func NewServer(opts Options) nethttp.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &server{
		source:    opts.Source,
		staticDir: opts.StaticDir,
		audioDir:  opts.AudioDir,
		logger:    logger.Named("http"),
		tpl:       template.Must(template.New("page").Parse(pageTpl)),
	}

	r := mux.NewRouter()
	r.Use(requestLogger(s.logger))
	r.HandleFunc("/", s.handleIndex).Methods(nethttp.MethodGet, nethttp.MethodHead)
	r.PathPrefix("/static/").Handler(nethttp.StripPrefix("/static/", s.staticHandler())).
		Methods(nethttp.MethodGet, nethttp.MethodHead)
	r.Handle("/health", HealthHandler(s.source.Name())).Methods(nethttp.MethodGet)
	return r
}

func (s *server) handleIndex(w nethttp.ResponseWriter, r *nethttp.Request) {
	data := pageData{Slides: s.source.Slides()}
	if data.Slides == nil {
		data.Slides = []model.Slide{}
	}

	audio, ok, err := media.ResolveAudio(s.audioDir)
	if err != nil {
		s.logger.Warn("audio lookup failed", zap.String("audio_dir", s.audioDir), zap.Error(err))
	} else if ok {
		data.Audio = staticURL(audio)
	}

	var buf bytes.Buffer
	if err := s.tpl.Execute(&buf, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
		httpError(w, nethttp.StatusInternalServerError, "unable to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// staticHandler serves files from the static dir without directory listings.
func (s *server) staticHandler() nethttp.Handler {
	fs := nethttp.FileServer(nethttp.Dir(s.staticDir))
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		rel := filepath.FromSlash(strings.TrimPrefix(r.URL.Path, "/"))
		fi, err := os.Stat(filepath.Join(s.staticDir, filepath.Clean(string(filepath.Separator)+rel)))
		if err != nil || fi.IsDir() {
			nethttp.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=60")
		fs.ServeHTTP(w, r)
	})
}

// staticURL escapes each segment of rel so names holding '#', '?' or '%'
// reach the static handler intact.
func staticURL(rel string) string {
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/static/" + strings.Join(parts, "/")
}

func httpError(w nethttp.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
