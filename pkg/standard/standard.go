package standard

import (
	"fmt"
	"strings"
)

// CharsetMode selects how a Charset is applied.
type CharsetMode int

const (
	// Blacklist rejects paths containing any listed character.
	Blacklist CharsetMode = iota
	// Whitelist rejects paths containing any character not listed.
	Whitelist
)

var charsetModeNames = map[CharsetMode]string{
	Blacklist: "blacklist",
	Whitelist: "whitelist",
}

func (m CharsetMode) String() string {
	if v, ok := charsetModeNames[m]; ok {
		return v
	}
	return fmt.Sprintf("invalid(%d)", int(m))
}

// MarshalText encodes the mode by name.
func (m CharsetMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText for setting values from catalogs and configs.
func (m *CharsetMode) UnmarshalText(rawtext []byte) error {
	text := strings.ToLower(strings.TrimSpace(string(rawtext)))
	for k, v := range charsetModeNames {
		if v == text {
			*m = k
			return nil
		}
	}
	return fmt.Errorf("unknown charset mode %q", string(rawtext))
}

// Charset is the character list of a whitelist or blacklist rule.
type Charset struct {
	Mode  CharsetMode `json:"mode"`
	Chars string      `json:"chars"`
}

// Contains reports whether r is one of the listed characters.
func (c *Charset) Contains(r rune) bool {
	return strings.ContainsRune(c.Chars, r)
}

// Standard is the rule set of one target filesystem.
type Standard struct {
	Name string `json:"name"`

	// Charset is nil when the standard places no restriction on characters.
	Charset *Charset `json:"charset,omitempty"`

	SizeLimit          Limit `json:"size_limit"`
	MaxEntries         Limit `json:"max_entries"`
	MaxComponentLength Limit `json:"max_component_length"`
	MaxPathLength      Limit `json:"max_path_length"`

	DuplicatesAllowed bool `json:"duplicates_allowed"`
	SymlinksAllowed   bool `json:"symlinks_allowed"`
	HardlinksAllowed  bool `json:"hardlinks_allowed"`
}
