package slot

import (
	"github.com/vango-dev/pagelayout/internal/errors"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

// Entry maps a slot name to the component identity it accepts.
type Entry struct {
	Name    string
	Accepts vdom.Identity
}

// Definition is an ordered list of slots. When two entries accept the same
// identity the earlier one wins.
type Definition struct {
	entries []Entry
}

// NewDefinition validates entries and builds a Definition.
func NewDefinition(entries ...Entry) (Definition, error) {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return Definition{}, errors.New("E001").
				WithDetailf("Entry %d has an empty name.", i)
		}
		if e.Accepts == "" {
			return Definition{}, errors.New("E002").
				WithDetailf("Slot %q accepts an empty identity.", e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return Definition{}, errors.New("E003").
				WithDetailf("Slot %q is declared more than once.", e.Name).
				WithSuggestion("Give each slot a unique name")
		}
		seen[e.Name] = struct{}{}
	}

	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return Definition{entries: owned}, nil
}

// MustDefinition is like NewDefinition but panics on an invalid definition.
// It is intended for package-level slot tables.
func MustDefinition(entries ...Entry) Definition {
	def, err := NewDefinition(entries...)
	if err != nil {
		panic(err)
	}
	return def
}

// Entries returns a copy of the definition's entries in declaration order.
func (d Definition) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Names returns the slot names in declaration order.
func (d Definition) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of slots.
func (d Definition) Len() int {
	return len(d.entries)
}

// match returns the name of the first slot accepting ident.
func (d Definition) match(ident vdom.Identity) (string, bool) {
	if ident == "" {
		return "", false
	}
	for _, e := range d.entries {
		if e.Accepts == ident {
			return e.Name, true
		}
	}
	return "", false
}
