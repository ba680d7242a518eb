package standard

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Catalog is an ordered, read-only set of standards.
type Catalog struct {
	standards []Standard
	index     map[string]int // keyed by case-folded name
}

// NewCatalog builds a catalog from standards, keeping their order.
// Names must be non-empty and unique ignoring case.
func NewCatalog(standards []Standard) (*Catalog, error) {
	c := &Catalog{
		standards: make([]Standard, 0, len(standards)),
		index:     make(map[string]int, len(standards)),
	}
	for i, s := range standards {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w: standard #%d has no name", ErrInvalidCatalog, i+1)
		}
		key := foldName(s.Name)
		if prev, ok := c.index[key]; ok {
			return nil, fmt.Errorf("%w: %q (also defined as %q)", ErrDuplicateStandard, s.Name, c.standards[prev].Name)
		}
		c.index[key] = len(c.standards)
		c.standards = append(c.standards, s)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := parseEmbedded()
		if err != nil {
			panic(fmt.Sprintf("standard: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup finds a standard by name, ignoring case.
func (c *Catalog) Lookup(name string) (Standard, error) {
	if i, ok := c.index[foldName(name)]; ok {
		return c.standards[i], nil
	}
	return Standard{}, &UnknownStandardError{Name: name}
}

// Resolve turns a comma separated list of names into standards, in the order
// given. Duplicate names are kept. A list with no names is an error.
func (c *Catalog) Resolve(list string) ([]Standard, error) {
	var out []Standard
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoStandards
	}
	return out, nil
}

// All returns every standard in catalog order.
func (c *Catalog) All() []Standard {
	out := make([]Standard, len(c.standards))
	copy(out, c.standards)
	return out
}

// Len returns the number of standards.
func (c *Catalog) Len() int { return len(c.standards) }

func foldName(name string) string {
	return cases.Fold().String(name)
}
