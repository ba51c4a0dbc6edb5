package web

import (
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pkoehler/cvsite/internal/content"
	"github.com/pkoehler/cvsite/internal/cookie"
	"github.com/pkoehler/cvsite/internal/httpserver"
	"github.com/pkoehler/cvsite/internal/i18n"
	"github.com/pkoehler/cvsite/internal/mailer"
)

// langCookie is the language preference cookie name, shared with the
// detector configuration in main.
const langCookie = "lang"

// Deps are the collaborators the handler needs. All fields are required
// except Static.
type Deps struct {
	Logger     *slog.Logger
	Store      *content.Store
	Translator *i18n.Translator
	Detector   *i18n.Detector
	Cookies    *cookie.Manager
	Sender     mailer.Sender
	Templates  *template.Template
	Sections   []SectionRenderer
	Static     fs.FS
}

// Handler serves the whole site.
type Handler struct {
	logger   *slog.Logger
	store    *content.Store
	tr       *i18n.Translator
	detector *i18n.Detector
	cookies  *cookie.Manager
	sender   mailer.Sender
	tmpl     *template.Template
	sections []SectionRenderer
	byID     map[string]SectionRenderer
	static   fs.FS
}

// NewHandler validates deps and builds the Handler.
func NewHandler(d Deps) (*Handler, error) {
	switch {
	case d.Store == nil:
		return nil, errors.New("web: nil content store")
	case d.Translator == nil:
		return nil, errors.New("web: nil translator")
	case d.Detector == nil:
		return nil, errors.New("web: nil detector")
	case d.Cookies == nil:
		return nil, errors.New("web: nil cookie manager")
	case d.Sender == nil:
		return nil, errors.New("web: nil mail sender")
	case d.Templates == nil:
		return nil, errors.New("web: nil templates")
	case len(d.Sections) == 0:
		return nil, errors.New("web: no section renderers")
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}

	byID := make(map[string]SectionRenderer, len(d.Sections))
	for _, s := range d.Sections {
		byID[s.ID()] = s
	}

	return &Handler{
		logger:   d.Logger,
		store:    d.Store,
		tr:       d.Translator,
		detector: d.Detector,
		cookies:  d.Cookies,
		sender:   d.Sender,
		tmpl:     d.Templates,
		sections: d.Sections,
		byID:     byID,
		static:   d.Static,
	}, nil
}

// Router builds the site's route tree.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(h.detector))

	r.Get("/health", httpserver.Healthcheck())

	if h.static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(h.static)))
	}

	r.Get("/", h.handleRoot)
	r.Get("/lang/{code}", h.handleLangSwitch)
	r.Get("/vcard", h.handleVCard)
	r.Get("/vcard/qr.png", h.handleVCardQR)

	r.Route("/{lang}", func(r chi.Router) {
		r.Get("/", h.handlePage)
		r.Post("/carousel/{section}/{action}", h.handleCarousel)
		r.Post("/contact", h.handleContact)
	})

	return r
}
