// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package category holds the closed vocabulary of arXiv subject categories.
//
// The vocabulary is decoded from an embedded YAML taxonomy once, in init,
// and is read-only afterwards, so every function here is safe for
// concurrent use. Lookups are exact and case-sensitive: "q-bio" and
// "q-bio.CB" are distinct tokens, and "Q-BIO.CB" matches neither.
package category

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// Category is one member of the vocabulary.
type Category struct {
	// Token is the full category string, e.g. "q-bio.CB" or "hep-th".
	Token string `json:"token" yaml:"token"`

	// Archive is the part before the dot, e.g. "q-bio".
	Archive string `json:"archive" yaml:"archive"`

	// Subject is the subject class after the dot; empty for a bare archive.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Group is the top-level arXiv group, e.g. "physics" for "hep-th".
	Group string `json:"group" yaml:"group"`

	// Legacy marks archives that no longer accept submissions.
	Legacy bool `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

type taxonomy struct {
	Archives []archiveSpec `yaml:"archives"`
}

type archiveSpec struct {
	Name     string   `yaml:"name"`
	Group    string   `yaml:"group"`
	Legacy   bool     `yaml:"legacy"`
	Subjects []string `yaml:"subjects"`
}

var (
	table  map[string]Category
	sorted []Category
)

func init() {
	t, err := decode(taxonomyYAML)
	if err != nil {
		panic(fmt.Sprintf("category: decoding embedded taxonomy: %v", err))
	}
	table = t
	sorted = make([]Category, 0, len(t))
	for _, c := range t {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Token < sorted[j].Token })
}

// decode builds the lookup table from a YAML taxonomy. Every archive is a
// valid token on its own; each subject adds "archive.subject".
func decode(data []byte) (map[string]Category, error) {
	var t taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	if len(t.Archives) == 0 {
		return nil, fmt.Errorf("taxonomy has no archives")
	}

	out := make(map[string]Category)
	add := func(c Category) error {
		if _, dup := out[c.Token]; dup {
			return fmt.Errorf("duplicate category %q", c.Token)
		}
		out[c.Token] = c
		return nil
	}

	for _, a := range t.Archives {
		if a.Name == "" || strings.ContainsAny(a.Name, "./ ") {
			return nil, fmt.Errorf("invalid archive name %q", a.Name)
		}
		if a.Group == "" {
			return nil, fmt.Errorf("archive %q has no group", a.Name)
		}
		if err := add(Category{Token: a.Name, Archive: a.Name, Group: a.Group, Legacy: a.Legacy}); err != nil {
			return nil, err
		}
		for _, s := range a.Subjects {
			if s == "" {
				return nil, fmt.Errorf("archive %q has an empty subject", a.Name)
			}
			c := Category{
				Token:   a.Name + "." + s,
				Archive: a.Name,
				Subject: s,
				Group:   a.Group,
				Legacy:  a.Legacy,
			}
			if err := add(c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// IsValid reports whether token is a current or historical arXiv category.
func IsValid(token string) bool {
	_, ok := table[token]
	return ok
}

// Lookup returns the category for token.
func Lookup(token string) (Category, bool) {
	c, ok := table[token]
	return c, ok
}

// All returns every category sorted by token. The slice is a copy.
func All() []Category {
	out := make([]Category, len(sorted))
	copy(out, sorted)
	return out
}
