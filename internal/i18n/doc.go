// Package i18n resolves the visitor's language and translates the UI chrome.
//
// Detection walks a fixed chain — preference cookie, URL path prefix, query
// parameter, Accept-Language header — and falls back to the default
// language. Every candidate is normalized through golang.org/x/text language
// tags so that "de-CH" resolves to "de" when only the base language is
// supported.
//
// The Translator covers interface strings (section headings, button labels,
// ARIA text, error notices); the actual CV content lives in the content
// package and is translated by authoring one document per language.
package i18n
