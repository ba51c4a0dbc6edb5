package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Source loads the document for a single language. Implementations must be
// safe for concurrent use.
type Source interface {
	Load(ctx context.Context, lang string) (*Document, error)
}

// FSSource reads documents from a filesystem, one "<lang>.yaml" file per
// language under dir. It serves both the embedded production content and
// on-disk directories during authoring.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates a Source over fsys. dir may be "." for the root.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	if dir == "" {
		dir = "."
	}
	return &FSSource{fsys: fsys, dir: dir}
}

// Load reads and validates the document for lang.
func (s *FSSource) Load(ctx context.Context, lang string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := fs.ReadFile(s.fsys, s.dir+"/"+lang+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, lang)
		}
		return nil, fmt.Errorf("content: read %s: %w", lang, err)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", lang, err)
	}
	if doc.Lang == "" {
		doc.Lang = lang
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", lang, err)
	}
	return &doc, nil
}

// Validate checks the fields the templates depend on. Entry IDs must be
// unique within their section because they become DOM ids.
func (d *Document) Validate() error {
	if d.Headline == "" {
		return fmt.Errorf("%w: missing headline", ErrInvalid)
	}
	if d.Contact.Name == "" {
		return fmt.Errorf("%w: missing contact name", ErrInvalid)
	}

	seen := make(map[string]struct{}, len(d.Career)+len(d.Academic))
	for i, p := range d.Career {
		if p.ID == "" {
			return fmt.Errorf("%w: career[%d] has no id", ErrInvalid, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate career id %q", ErrInvalid, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(d.Academic))
	for i, m := range d.Academic {
		if m.ID == "" {
			return fmt.Errorf("%w: academic[%d] has no id", ErrInvalid, i)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: duplicate academic id %q", ErrInvalid, m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return nil
}
