// Package layout provides PageLayout, a page shell with header, sidebar and
// main slots.
//
// Children are declared in any order and sorted into slots by their
// component identity:
//
//	layout.PageLayout(
//	    layout.Sidebar(vdom.Text("Sidebar")),
//	    layout.Header(vdom.Text("Header")),
//	    layout.Main(vdom.Text("Main")),
//	)
//
// The shell always renders sidebar, header, main in that order. Children
// that are not Header, Sidebar or Main elements are left out.
//
// When the parts are known up front, Compose skips classification:
//
//	layout.Compose(layout.Parts{
//	    Header: []*vdom.VNode{vdom.H1("Dashboard")},
//	    Main:   []*vdom.VNode{body},
//	})
package layout
