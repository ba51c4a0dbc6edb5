package web

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkoehler/cvsite/internal/content"
	"github.com/pkoehler/cvsite/internal/cookie"
	"github.com/pkoehler/cvsite/internal/i18n"
	"github.com/pkoehler/cvsite/internal/logger"
)

// notice is a one-shot, auto-dismissing message shown at the top of the
// page. Kind is "error" or "info" and selects the styling.
type notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type altLink struct {
	Code string
	URL  string
}

type renderedSection struct {
	ID   string
	HTML template.HTML
}

// pageData is the payload for the layout template.
type pageData struct {
	Lang      string
	Languages []string
	Doc       *content.Document
	Sections  []renderedSection
	Notice    *notice
	AltLinks  []altLink
	Year      int

	tr *i18n.Translator
}

// T translates a UI string for the page's language.
func (p pageData) T(key string, args ...string) string {
	return p.tr.T(p.Lang, key, args...)
}

// handleRoot sends the visitor to their detected language.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())
	http.Redirect(w, r, "/"+lang+"/", http.StatusFound)
}

// handleLangSwitch persists an explicit language choice and returns to the
// localized page. Unsupported codes fall back to the default language with
// a visible notice.
func (h *Handler) handleLangSwitch(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	lang := h.detector.Normalize(code)
	if lang == "" {
		h.flashUnsupported(w, r, code)
		http.Redirect(w, r, "/"+h.detector.Default()+"/", http.StatusFound)
		return
	}

	h.cookies.Set(w, langCookie, lang)
	http.Redirect(w, r, "/"+lang+"/", http.StatusFound)
}

// handlePage renders the CV for the language in the URL path.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "lang")

	lang := h.detector.Normalize(raw)
	if lang == "" {
		h.flashUnsupported(w, r, raw)
		http.Redirect(w, r, "/"+h.detector.Default()+"/", http.StatusFound)
		return
	}
	if raw != lang {
		// Canonicalize region variants like /de-CH/ to /de/.
		http.Redirect(w, r, "/"+lang+"/", http.StatusMovedPermanently)
		return
	}

	data := pageData{
		Lang:      lang,
		Languages: h.detector.Supported(),
		Year:      time.Now().Year(),
		tr:        h.tr,
	}
	for _, code := range data.Languages {
		data.AltLinks = append(data.AltLinks, altLink{Code: code, URL: "/" + code + "/"})
	}

	var n notice
	if err := h.cookies.GetFlash(w, r, "notice", &n); err == nil {
		data.Notice = &n
	} else if !errors.Is(err, cookie.ErrNotFound) {
		h.logger.WarnContext(r.Context(), "unreadable flash cookie", logger.Error(err))
	}

	doc, err := h.store.Load(r.Context(), lang)
	if err != nil {
		// Both the language and the fallback failed. Render the shell with
		// a notice; the visitor keeps navigation and contact links.
		h.logger.ErrorContext(r.Context(), "content unavailable",
			logger.Lang(lang), logger.Error(err))
		data.Notice = &notice{Kind: "error", Message: h.tr.T(lang, "notice.content_unavailable")}
		h.render(w, data)
		return
	}
	data.Doc = doc

	for _, s := range h.sections {
		html, err := s.Render(doc, lang)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "section render failed",
				logger.Component(s.ID()), logger.Error(err))
			continue
		}
		data.Sections = append(data.Sections, renderedSection{ID: s.ID(), HTML: html})
	}

	h.render(w, data)
}

func (h *Handler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		h.logger.Error("page render failed", logger.Error(err))
	}
}

func (h *Handler) flashUnsupported(w http.ResponseWriter, r *http.Request, code string) {
	lang := h.detector.Default()
	n := notice{
		Kind:    "error",
		Message: h.tr.T(lang, "notice.language_unavailable", "code", code),
	}
	if err := h.cookies.SetFlash(w, "notice", n); err != nil {
		h.logger.WarnContext(r.Context(), "failed to set flash", logger.Error(err))
	}
}
