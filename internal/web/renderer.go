package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pkoehler/cvsite/internal/content"
	"github.com/pkoehler/cvsite/internal/i18n"
)

// SectionRenderer turns one part of a Document into markup. One
// implementation exists per page section; the set is injected into the
// handler at startup so adding a section never touches the page handler.
type SectionRenderer interface {
	// ID is the section's stable identifier, used in URLs and DOM ids.
	ID() string
	// ItemCount reports how many carousel items the section has for the
	// given document; sections without a carousel return 0.
	ItemCount(doc *content.Document) int
	// Render produces the section markup for the document.
	Render(doc *content.Document, lang string) (template.HTML, error)
}

// sectionData is the payload handed to the section templates.
type sectionData struct {
	Lang  string
	Doc   *content.Document
	Items int

	tr *i18n.Translator
}

// T translates a UI string for the section's language.
func (d sectionData) T(key string, args ...string) string {
	return d.tr.T(d.Lang, key, args...)
}

type templateSection struct {
	id       string
	template string
	tmpl     *template.Template
	tr       *i18n.Translator
	count    func(*content.Document) int
}

func (s *templateSection) ID() string { return s.id }

func (s *templateSection) ItemCount(doc *content.Document) int {
	if s.count == nil || doc == nil {
		return 0
	}
	return s.count(doc)
}

func (s *templateSection) Render(doc *content.Document, lang string) (template.HTML, error) {
	var sb strings.Builder
	data := sectionData{Lang: lang, Doc: doc, Items: s.ItemCount(doc), tr: s.tr}
	if err := s.tmpl.ExecuteTemplate(&sb, s.template, data); err != nil {
		return "", fmt.Errorf("web: render section %s: %w", s.id, err)
	}
	return template.HTML(sb.String()), nil
}

// DefaultSections builds the renderer set for the CV page: the career
// timeline and academic achievements as carousels, skills as a flat grid.
func DefaultSections(tmpl *template.Template, tr *i18n.Translator) []SectionRenderer {
	return []SectionRenderer{
		&templateSection{
			id:       "career",
			template: "section_career.html",
			tmpl:     tmpl,
			tr:       tr,
			count:    func(d *content.Document) int { return len(d.Career) },
		},
		&templateSection{
			id:       "academic",
			template: "section_academic.html",
			tmpl:     tmpl,
			tr:       tr,
			count:    func(d *content.Document) int { return len(d.Academic) },
		},
		&templateSection{
			id:       "skills",
			template: "section_skills.html",
			tmpl:     tmpl,
			tr:       tr,
		},
	}
}

// ParseTemplates loads the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
