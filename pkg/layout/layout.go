package layout

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/pagelayout/pkg/slot"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

// Slot names.
const (
	SlotHeader  = "header"
	SlotSidebar = "sidebar"
	SlotMain    = "main"
)

// Slots is the slot table PageLayout classifies its children against.
var Slots = slot.MustDefinition(
	slot.Entry{Name: SlotMain, Accepts: MainIdentity},
	slot.Entry{Name: SlotHeader, Accepts: HeaderIdentity},
	slot.Entry{Name: SlotSidebar, Accepts: SidebarIdentity},
)

// Observer receives classification outcomes, typically to record metrics.
type Observer interface {
	ObserveSlots(result slot.Result)
	ObserveDrop(reason slot.DropReason)
}

// Layout renders page shells. A Layout is immutable after New and safe for
// concurrent use.
type Layout struct {
	class      string
	logger     *slog.Logger
	observer   Observer
	classifier *slot.Classifier
}

// Option configures a Layout.
type Option func(*Layout)

// WithClass adds extra classes to the outer PageLayout element. Repeated
// calls accumulate.
func WithClass(class string) Option {
	return func(l *Layout) {
		class = strings.TrimSpace(class)
		switch {
		case class == "":
		case l.class == "":
			l.class = class
		default:
			l.class += " " + class
		}
	}
}

// WithLogger sets the logger used to report dropped children at debug level.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layout) {
		l.logger = logger
	}
}

// WithObserver sets an Observer for classification outcomes.
func WithObserver(o Observer) Option {
	return func(l *Layout) {
		l.observer = o
	}
}

// New creates a Layout.
func New(opts ...Option) *Layout {
	l := &Layout{}
	for _, opt := range opts {
		opt(l)
	}
	l.classifier = slot.NewClassifier(slot.WithDropHook(l.onDrop))
	return l
}

func (l *Layout) onDrop(child any, reason slot.DropReason) {
	if l.observer != nil {
		l.observer.ObserveDrop(reason)
	}
	if reason != slot.NoSlot {
		return
	}
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}
	if node, ok := vdom.IsElement(child); ok {
		logger.Debug("layout child matched no slot",
			"identity", string(node.Identity()),
			"tag", node.Tag,
		)
	}
}

// Render classifies children into the header, sidebar and main slots and
// renders the shell.
func (l *Layout) Render(children ...any) *vdom.VNode {
	slots := l.classifier.Classify(children, Slots)
	if l.observer != nil {
		l.observer.ObserveSlots(slots)
	}
	return l.shell(slots[SlotSidebar], slots[SlotHeader], slots[SlotMain])
}

// Parts holds the content of each slot for Compose. Empty parts render as
// nothing.
type Parts struct {
	Header  []*vdom.VNode
	Sidebar []*vdom.VNode
	Main    []*vdom.VNode
}

// Compose renders the shell from explicit parts. Nodes already built by the
// slot's sub-component are placed as given; runs of other nodes are wrapped
// in one sub-component each.
func (l *Layout) Compose(p Parts) *vdom.VNode {
	return l.shell(
		part(p.Sidebar, SidebarIdentity, Sidebar),
		part(p.Header, HeaderIdentity, Header),
		part(p.Main, MainIdentity, Main),
	)
}

func part(nodes []*vdom.VNode, ident vdom.Identity, wrap func(...any) *vdom.VNode) []*vdom.VNode {
	var out, loose []*vdom.VNode
	flush := func() {
		if len(loose) > 0 {
			out = append(out, wrap(loose))
			loose = nil
		}
	}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Identity() == ident {
			flush()
			out = append(out, n)
			continue
		}
		loose = append(loose, n)
	}
	flush()
	return out
}

// shell places the slots in their fixed visual order.
func (l *Layout) shell(sidebar, header, main []*vdom.VNode) *vdom.VNode {
	return vdom.Div(
		vdom.Class(ClassLayout, l.class),
		sidebar,
		header,
		main,
	)
}

var defaultLayout = New()

// PageLayout renders a page shell with the default options.
func PageLayout(children ...any) *vdom.VNode {
	return defaultLayout.Render(children...)
}

// Compose renders a page shell from explicit parts with the default options.
func Compose(p Parts) *vdom.VNode {
	return defaultLayout.Compose(p)
}
