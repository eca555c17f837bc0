package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <aside>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Identity names the renderable kind a node was built by.
// Component constructors stamp their identity onto the element they return
// so that containers can tell their children apart without inspecting markup.
type Identity string

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	Ident    Identity  // Explicit component identity, empty for plain elements
}

// Props holds element attributes.
type Props map[string]any

// IsElement reports whether the node is an element or a component node.
// Text, raw and fragment nodes are not elements.
func (v *VNode) IsElement() bool {
	if v == nil {
		return false
	}
	return v.Kind == KindElement || v.Kind == KindComponent
}

// Identity returns the component identity of the node.
//
// Nodes stamped via Tagged report that identity. Plain elements report
// their tag wrapped in angle brackets ("<div>") so they can never collide
// with a component identity. Non-elements report "".
func (v *VNode) Identity() Identity {
	if !v.IsElement() {
		return ""
	}
	if v.Ident != "" {
		return v.Ident
	}
	if v.Kind == KindElement {
		return Identity("<" + v.Tag + ">")
	}
	return ""
}

// IsElement reports whether an arbitrary child value is an element node,
// returning it when it is. Strings, nil, booleans and non-element nodes
// all report false.
func IsElement(child any) (*VNode, bool) {
	node, ok := child.(*VNode)
	if !ok || !node.IsElement() {
		return nil, false
	}
	return node, true
}

// Tagged stamps a component identity onto node and returns it.
func Tagged(ident Identity, node *VNode) *VNode {
	if node != nil {
		node.Ident = ident
	}
	return node
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
