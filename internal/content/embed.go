package content

import "embed"

//go:embed locales/*.yaml
var localeFS embed.FS

// Languages lists the shipped content languages. The first entry is the
// fallback for everything else.
var Languages = []string{"en", "de", "fr"}

// DefaultLanguage is the fallback content language.
const DefaultLanguage = "en"

// EmbeddedSource returns the Source over the content shipped inside the
// binary.
func EmbeddedSource() *FSSource {
	return NewFSSource(localeFS, "locales")
}
