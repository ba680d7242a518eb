package standard

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed standards.yaml
var embeddedCatalog []byte

// catalogFile is the on-disk schema of a catalog.
type catalogFile struct {
	Standards []standardRow `yaml:"standards"`
}

type standardRow struct {
	Name               string      `yaml:"name"`
	Charset            *charsetRow `yaml:"charset"`
	SizeLimit          *uint64     `yaml:"size_limit"`
	MaxEntries         *uint64     `yaml:"max_entries"`
	MaxComponentLength *uint64     `yaml:"max_component_length"`
	MaxPathLength      *uint64     `yaml:"max_path_length"`
	Duplicates         *bool       `yaml:"duplicates"`
	Symlinks           *bool       `yaml:"symlinks"`
	Hardlinks          *bool       `yaml:"hardlinks"`
}

type charsetRow struct {
	Mode  string `yaml:"mode"`
	Chars string `yaml:"chars"`
}

// Load reads a catalog in the YAML catalog schema.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if len(file.Standards) == 0 {
		return nil, fmt.Errorf("%w: no standards defined", ErrInvalidCatalog)
	}

	standards := make([]Standard, 0, len(file.Standards))
	for _, row := range file.Standards {
		s, err := row.toStandard()
		if err != nil {
			return nil, err
		}
		standards = append(standards, s)
	}
	return NewCatalog(standards)
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func parseEmbedded() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// toStandard applies the curation convention: a feature the row does not
// explicitly disallow is allowed.
func (r standardRow) toStandard() (Standard, error) {
	s := Standard{
		Name:               r.Name,
		SizeLimit:          limitFromPtr(r.SizeLimit),
		MaxEntries:         limitFromPtr(r.MaxEntries),
		MaxComponentLength: limitFromPtr(r.MaxComponentLength),
		MaxPathLength:      limitFromPtr(r.MaxPathLength),
		DuplicatesAllowed:  boolOr(r.Duplicates, true),
		SymlinksAllowed:    boolOr(r.Symlinks, true),
		HardlinksAllowed:   boolOr(r.Hardlinks, true),
	}
	if r.Charset != nil {
		var mode CharsetMode
		if err := mode.UnmarshalText([]byte(r.Charset.Mode)); err != nil {
			return Standard{}, fmt.Errorf("%w: standard %q: %w", ErrInvalidCatalog, r.Name, err)
		}
		if r.Charset.Chars == "" {
			return Standard{}, fmt.Errorf("%w: standard %q: empty charset", ErrInvalidCatalog, r.Name)
		}
		s.Charset = &Charset{Mode: mode, Chars: r.Charset.Chars}
	}
	return s, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
