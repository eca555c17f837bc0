package layout

import "github.com/vango-dev/pagelayout/pkg/vdom"

// Component identities of the layout's sub-components.
const (
	HeaderIdentity  vdom.Identity = "pagelayout.Header"
	SidebarIdentity vdom.Identity = "pagelayout.Sidebar"
	MainIdentity    vdom.Identity = "pagelayout.Main"
)

// CSS classes emitted by the shell and its parts.
const (
	ClassLayout  = "PageLayout"
	ClassHeader  = "PageHeader"
	ClassSidebar = "PageSidebar"
	ClassMain    = "PageMain"
)

// Header renders the header slot.
func Header(children ...any) *vdom.VNode {
	return vdom.Tagged(HeaderIdentity, vdom.Div(vdom.Class(ClassHeader), children))
}

// Sidebar renders the sidebar slot as a labelled aside landmark.
func Sidebar(children ...any) *vdom.VNode {
	return vdom.Tagged(SidebarIdentity, vdom.Aside(
		vdom.Class(ClassSidebar),
		vdom.AriaLabel("Sidebar"),
		children,
	))
}

// Main renders the main content slot.
func Main(children ...any) *vdom.VNode {
	return vdom.Tagged(MainIdentity, vdom.Div(vdom.Class(ClassMain), children))
}

// Namespace groups the sub-components with their container so call sites
// can read like Page.Layout(Page.Header(...), Page.Main(...)).
type Namespace struct {
	Header  func(children ...any) *vdom.VNode
	Sidebar func(children ...any) *vdom.VNode
	Main    func(children ...any) *vdom.VNode
}

// Layout renders a PageLayout with the default options.
func (Namespace) Layout(children ...any) *vdom.VNode {
	return PageLayout(children...)
}

// Page is the PageLayout namespace.
var Page = Namespace{
	Header:  Header,
	Sidebar: Sidebar,
	Main:    Main,
}
