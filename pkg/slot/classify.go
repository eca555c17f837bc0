package slot

import (
	"github.com/vango-dev/pagelayout/internal/errors"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

// Result maps every slot name of a Definition to the children assigned to it.
type Result map[string][]*vdom.VNode

// Count returns the total number of classified children.
func (r Result) Count() int {
	n := 0
	for _, nodes := range r {
		n += len(nodes)
	}
	return n
}

// DropReason says why a child was left out of every slot.
type DropReason uint8

const (
	// NotElement marks text, nil, booleans and other non-element children.
	NotElement DropReason = iota + 1
	// NoSlot marks elements whose identity no slot accepts.
	NoSlot
)

// String returns the string representation of the DropReason.
func (r DropReason) String() string {
	switch r {
	case NotElement:
		return "not_element"
	case NoSlot:
		return "no_slot"
	default:
		return "unknown"
	}
}

// DropHook observes children that end up in no slot.
type DropHook func(child any, reason DropReason)

// Classifier assigns children to slots. The zero value is ready to use.
type Classifier struct {
	onDrop DropHook
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithDropHook installs a hook that is called for every skipped or dropped
// child. The hook cannot change the result.
func WithDropHook(hook DropHook) Option {
	return func(c *Classifier) {
		c.onDrop = hook
	}
}

// NewClassifier creates a Classifier with the given options.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify partitions children into the slots of def, keeping their relative
// order. Slices of children ([]*vdom.VNode, []any) are flattened in place.
// A []any that contains itself, directly or through nested slices, is
// flattened once; the inner reference is skipped. children is never modified.
func (c *Classifier) Classify(children []any, def Definition) Result {
	result := make(Result, def.Len())
	for _, e := range def.entries {
		result[e.Name] = []*vdom.VNode{}
	}
	c.walk(children, def, result, map[sliceID]struct{}{})
	return result
}

// sliceID identifies a []any by its backing array and length.
type sliceID struct {
	first *any
	n     int
}

func (c *Classifier) walk(children []any, def Definition, result Result, active map[sliceID]struct{}) {
	if len(children) == 0 {
		return
	}
	id := sliceID{first: &children[0], n: len(children)}
	if _, cyclic := active[id]; cyclic {
		return
	}
	active[id] = struct{}{}
	defer delete(active, id)

	for _, child := range children {
		switch v := child.(type) {
		case []any:
			c.walk(v, def, result, active)
			continue
		case []*vdom.VNode:
			for _, n := range v {
				c.place(n, def, result)
			}
			continue
		}
		c.place(child, def, result)
	}
}

func (c *Classifier) place(child any, def Definition, result Result) {
	node, ok := vdom.IsElement(child)
	if !ok {
		c.drop(child, NotElement)
		return
	}
	name, ok := def.match(node.Identity())
	if !ok {
		c.drop(child, NoSlot)
		return
	}
	result[name] = append(result[name], node)
}

func (c *Classifier) drop(child any, reason DropReason) {
	if c.onDrop != nil {
		c.onDrop(child, reason)
	}
}

// Classify partitions children into the slots of def using a default
// Classifier.
func Classify(children []any, def Definition) Result {
	var c Classifier
	return c.Classify(children, def)
}

// Strict classifies like Classify but fails with E004 when any element child
// matches no slot. Non-element children are still ignored.
func Strict(children []any, def Definition) (Result, error) {
	var unmatched []vdom.Identity
	c := NewClassifier(WithDropHook(func(child any, reason DropReason) {
		if reason != NoSlot {
			return
		}
		if node, ok := vdom.IsElement(child); ok {
			unmatched = append(unmatched, node.Identity())
		}
	}))

	result := c.Classify(children, def)
	if len(unmatched) > 0 {
		return result, errors.New("E004").
			WithDetailf("%d element(s) matched no slot: %v", len(unmatched), unmatched).
			WithSuggestion("Wrap the content in one of the slot components")
	}
	return result, nil
}
