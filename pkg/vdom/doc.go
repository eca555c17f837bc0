// Package vdom provides the virtual node model used by pagelayout components.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes. Attr is used
// to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// nil arguments are ignored, strings become text nodes and slices of nodes
// are flattened into the child list.
//
// # Component Identity
//
// Every element carries an Identity. Component constructors stamp theirs
// with Tagged; plain elements report "<tag>". Containers use identities to
// sort their children into named slots (see package slot).
package vdom
