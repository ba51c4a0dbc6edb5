package i18n

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds header parsing; RFC 7231 sets no limit but
// 4KB is far beyond any legitimate header.
const maxAcceptLanguageLength = 4096

// Detector resolves a visitor's language from an HTTP request. Sources are
// tried in a fixed priority order: preference cookie, URL path prefix,
// query parameter, Accept-Language header. The first supported language
// wins; otherwise the default language is returned.
type Detector struct {
	supported   []string
	defaultLang string
	cookieName  string
	queryParam  string
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithCookieName sets the preference cookie name. Default "lang".
func WithCookieName(name string) DetectorOption {
	return func(d *Detector) {
		if name != "" {
			d.cookieName = name
		}
	}
}

// WithQueryParam sets the query parameter name. Default "lang".
func WithQueryParam(name string) DetectorOption {
	return func(d *Detector) {
		if name != "" {
			d.queryParam = name
		}
	}
}

// WithDefault sets the fallback language. Default DefaultLanguage.
func WithDefault(lang string) DetectorOption {
	return func(d *Detector) {
		if lang != "" {
			d.defaultLang = strings.ToLower(lang)
		}
	}
}

// NewDetector creates a Detector for the given supported languages.
func NewDetector(supported []string, opts ...DetectorOption) *Detector {
	normalized := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = strings.ToLower(lang)
	}

	d := &Detector{
		supported:   normalized,
		defaultLang: DefaultLanguage,
		cookieName:  "lang",
		queryParam:  "lang",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default returns the detector's fallback language.
func (d *Detector) Default() string { return d.defaultLang }

// Supported returns the supported language codes.
func (d *Detector) Supported() []string { return slices.Clone(d.supported) }

// IsSupported reports whether code normalizes to a supported language.
func (d *Detector) IsSupported(code string) bool {
	return d.Normalize(code) != ""
}

// Detect resolves the request's language. It never returns an unsupported
// code; when every source fails the default language is returned.
func (d *Detector) Detect(r *http.Request) string {
	if c, err := r.Cookie(d.cookieName); err == nil {
		if lang := d.Normalize(c.Value); lang != "" {
			return lang
		}
	}

	if lang := d.Normalize(pathPrefix(r.URL.Path)); lang != "" {
		return lang
	}

	if lang := d.Normalize(r.URL.Query().Get(d.queryParam)); lang != "" {
		return lang
	}

	if lang := d.matchAcceptLanguage(r.Header.Get("Accept-Language")); lang != "" {
		return lang
	}

	return d.defaultLang
}

// Normalize parses a raw language tag and maps it onto a supported code:
// exact match first, then the base language ("de-CH" to "de"). Returns ""
// for unparseable or unsupported tags.
func (d *Detector) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}

	full := strings.ToLower(tag.String())
	if slices.Contains(d.supported, full) {
		return full
	}

	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	code := base.String()
	if slices.Contains(d.supported, code) {
		return code
	}
	return ""
}

// pathPrefix returns the first segment of a URL path.
func pathPrefix(path string) string {
	path = strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		path = path[:idx]
	}
	return path
}

type langWithQ struct {
	lang string
	q    float64
}

// matchAcceptLanguage implements RFC 7231 negotiation: candidates sorted by
// quality, exact matches first, then base-language fallback so quality
// ordering is respected across both phases.
func (d *Detector) matchAcceptLanguage(header string) string {
	candidates := parseAcceptLanguage(header)

	for _, c := range candidates {
		if slices.Contains(d.supported, c.lang) {
			return c.lang
		}
	}
	for _, c := range candidates {
		if idx := strings.IndexByte(c.lang, '-'); idx > 0 {
			if base := c.lang[:idx]; slices.Contains(d.supported, base) {
				return base
			}
		}
	}
	return ""
}

// parseAcceptLanguage splits an Accept-Language header into tags ordered by
// descending quality, dropping malformed entries.
func parseAcceptLanguage(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0
		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if val, err := strconv.ParseFloat(qPart[2:], 64); err == nil && val >= 0 && val <= 1 {
					q = val
				}
			}
		}

		if lang != "" {
			langs = append(langs, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortStableFunc(langs, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}
