// Package content loads and caches the per-language CV documents.
//
// A Document is the full set of displayable data for one language: headline,
// career positions, academic achievements, skill groups, and contact info.
// Documents are authored as one YAML file per language, shipped inside the
// binary, and are immutable once loaded.
//
// The Store resolves a language to its Document: cache first, then the
// source, then one retry against the fallback language. When both fail the
// caller gets ErrUnavailable and decides how to degrade; nothing here is
// fatal.
package content
