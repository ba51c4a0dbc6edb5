package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages maps language code to a nested tree of UI strings.
type Messages map[string]map[string]any

// Translator looks up UI strings by dot-separated key with named parameter
// substitution. Missing keys fall back to the key itself so a forgotten
// translation degrades visibly instead of blanking part of the page.
type Translator struct {
	messages    Messages
	defaultLang string
	logger      *slog.Logger
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithDefaultLanguage sets the language used when a lookup language has no
// messages at all.
func WithDefaultLanguage(lang string) TranslatorOption {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger enables logging of missing translations.
func WithLogger(l *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator creates a Translator over the given message tree.
func NewTranslator(messages Messages, opts ...TranslatorOption) (*Translator, error) {
	for lang, tree := range messages {
		if lang == "" {
			return nil, fmt.Errorf("i18n: empty language code in messages")
		}
		if tree == nil {
			return nil, fmt.Errorf("i18n: nil message tree for language %q", lang)
		}
	}

	t := &Translator{
		messages:    messages,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// LoadMessages parses every YAML file in dir within fsys into a Messages
// tree. Each file keys messages by language at the top level; trees from
// multiple files are merged, later files winning on key collisions.
func LoadMessages(fsys fs.FS, dir string) (Messages, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read messages dir: %w", err)
	}

	merged := make(Messages)
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		raw, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", entry.Name(), err)
		}

		var perLang map[string]map[string]any
		if err := yaml.Unmarshal(raw, &perLang); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", entry.Name(), err)
		}

		for lang, tree := range perLang {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any, len(tree))
			}
			for k, v := range tree {
				merged[lang][k] = v
			}
		}
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("i18n: no message files found in %s", dir)
	}
	return merged, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(name)
	return strings.HasSuffix(ext, ".yaml") || strings.HasSuffix(ext, ".yml")
}

// SupportedLanguages returns the sorted language codes with messages.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.messages))
	for lang := range t.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether the key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	tree, ok := t.messages[lang]
	if !ok {
		return false
	}
	_, ok = lookup(tree, key)
	return ok
}

// T translates key for lang. args are name/value pairs substituted into
// "%{name}" placeholders. Unknown languages are retried against the default
// language before falling back to the key.
func (t *Translator) T(lang, key string, args ...string) string {
	tree, ok := t.messages[lang]
	if !ok {
		tree, ok = t.messages[t.defaultLang]
		if !ok {
			return substitute(key, args)
		}
	}

	val, ok := lookup(tree, key)
	if !ok {
		t.logger.Warn("translation missing", slog.String("lang", lang), slog.String("key", key))
		return substitute(key, args)
	}

	s, ok := val.(string)
	if !ok {
		t.logger.Warn("translation is not a string",
			slog.String("lang", lang), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", val)))
		return substitute(key, args)
	}
	return substitute(s, args)
}

// Td translates key with an explicit default instead of falling back to the
// key itself.
func (t *Translator) Td(lang, key, def string, args ...string) string {
	if tree, ok := t.messages[lang]; ok {
		if val, ok := lookup(tree, key); ok {
			if s, ok := val.(string); ok {
				return substitute(s, args)
			}
		}
	}
	return substitute(def, args)
}

// lookup traverses a nested map using dot-separated keys, so
// "nav.next" resolves tree["nav"]["next"].
func lookup(tree map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := tree

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		switch m := next.(type) {
		case map[string]any:
			current = m
		case map[any]any:
			converted := make(map[string]any, len(m))
			for k, v := range m {
				if ks, ok := k.(string); ok {
					converted[ks] = v
				}
			}
			current = converted
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders with values from the name/value
// argument pairs. Placeholders without a matching argument stay as-is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
