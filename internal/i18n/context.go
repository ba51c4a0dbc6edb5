package i18n

import "context"

// DefaultLanguage is used when no visitor preference can be determined.
const DefaultLanguage = "en"

type localeContextKey struct{}

// SetLocale stores the resolved language in the context.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// GetLocale returns the language stored in the context, or DefaultLanguage
// when none was set.
func GetLocale(ctx context.Context) string {
	lang, _ := ctx.Value(localeContextKey{}).(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
