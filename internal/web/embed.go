package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed locales/*.yaml
var localeFS embed.FS

//go:embed static
var staticFS embed.FS

// LocaleFS exposes the embedded UI message files for the translator.
func LocaleFS() fs.FS { return localeFS }

// StaticFS returns the embedded static assets rooted at "static".
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
