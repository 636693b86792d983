package sources

import (
	"os"

	"github.com/goccy/go-yaml"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
)

// Config describes one registered source.
type Config struct {
	ID ID `yaml:"id"`

	// Authors marks sources known to report author data. The author
	// minority-confirmation rule only fires when enough of them answered.
	Authors bool `yaml:"authors"`
}

// registryFile is the YAML shape of a source registry.
type registryFile struct {
	Authority ID       `yaml:"authority"`
	Sources   []Config `yaml:"sources"`
}

// Registry is the explicit context object describing the configured
// sources. Built once, read-only afterwards.
type Registry struct {
	authority ID
	order     []ID
	configs   map[ID]Config
}

// NewRegistry builds a registry from source configs. The authority is the
// single source whose classification assignment overrides consensus.
func NewRegistry(authority ID, configs ...Config) *Registry {
	r := &Registry{
		authority: authority,
		configs:   make(map[ID]Config, len(configs)),
	}
	for _, cfg := range configs {
		if _, dup := r.configs[cfg.ID]; dup {
			continue
		}
		r.order = append(r.order, cfg.ID)
		r.configs[cfg.ID] = cfg
	}
	return r
}

// Default returns the standard registry: Library of Congress is
// authoritative for classification and does not vote on authors.
func Default() *Registry {
	return NewRegistry(LibraryOfCongressID,
		Config{ID: LibraryOfCongressID},
		Config{ID: OpenLibraryID, Authors: true},
		Config{ID: GoogleBooksID, Authors: true},
	)
}

// ParseRegistry reads a registry from YAML.
func ParseRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, biberrors.WrapParse("yaml", "", err)
	}
	if len(file.Sources) == 0 {
		return nil, &biberrors.ValidationError{Field: "sources", Message: "registry declares no sources"}
	}

	r := NewRegistry(file.Authority, file.Sources...)
	if file.Authority != "" {
		if _, ok := r.configs[file.Authority]; !ok {
			return nil, &biberrors.ValidationError{
				Field:   "authority",
				Value:   file.Authority.String(),
				Message: "authority is not a registered source",
			}
		}
	}
	return r, nil
}

// LoadRegistry reads a registry from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, biberrors.WrapIO("read", path, err)
	}
	r, err := ParseRegistry(data)
	if err != nil {
		if pe, ok := err.(*biberrors.ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return r, nil
}

// Authority returns the authoritative source ID, or "" when none is set.
func (r *Registry) Authority() ID {
	return r.authority
}

// IDs returns the registered source IDs in declaration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether a source is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.configs[id]
	return ok
}

// AuthorCapable returns the sources known to report author data.
func (r *Registry) AuthorCapable() []ID {
	var out []ID
	for _, id := range r.order {
		if r.configs[id].Authors {
			out = append(out, id)
		}
	}
	return out
}
