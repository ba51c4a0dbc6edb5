package content

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Store caches loaded documents by language code for the lifetime of the
// process and falls back to a fixed default language when a load fails.
type Store struct {
	source   Source
	fallback string
	logger   *slog.Logger

	mu    sync.RWMutex
	cache map[string]*Document
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger supplies a logger for load failures.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store over source. fallback is the language retried
// once when a requested language fails to load.
func NewStore(source Source, fallback string, opts ...StoreOption) *Store {
	s := &Store{
		source:   source,
		fallback: fallback,
		logger:   slog.New(slog.DiscardHandler),
		cache:    make(map[string]*Document),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the document for lang. Resolution order: cache, source, then
// one retry with the fallback language. When the fallback also fails the
// error wraps ErrUnavailable and nothing is retried further.
//
// A successful fallback load is cached under both codes, so subsequent
// requests for the broken language are cache hits.
func (s *Store) Load(ctx context.Context, lang string) (*Document, error) {
	if doc, ok := s.cached(lang); ok {
		return doc, nil
	}

	doc, err := s.source.Load(ctx, lang)
	if err == nil {
		s.put(lang, doc)
		return doc, nil
	}
	if lang == s.fallback {
		return nil, errors.Join(ErrUnavailable, err)
	}

	s.logger.WarnContext(ctx, "content load failed, falling back",
		slog.String("lang", lang),
		slog.String("fallback", s.fallback),
		slog.Any("error", err),
	)

	fbDoc, fbErr := s.Load(ctx, s.fallback)
	if fbErr != nil {
		return nil, errors.Join(ErrUnavailable, err, fbErr)
	}

	s.put(lang, fbDoc)
	return fbDoc, nil
}

// Preload eagerly loads every given language, failing fast on startup when
// the shipped content is broken.
func (s *Store) Preload(ctx context.Context, langs ...string) error {
	for _, lang := range langs {
		doc, err := s.source.Load(ctx, lang)
		if err != nil {
			return err
		}
		s.put(lang, doc)
	}
	return nil
}

func (s *Store) cached(lang string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.cache[lang]
	return doc, ok
}

func (s *Store) put(lang string, doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[lang] = doc
}
