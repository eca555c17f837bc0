package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vango-dev/pagelayout/internal/errors"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	sw := &stickyWriter{w: w}
	if err := r.renderNode(sw, node, 0); err != nil {
		return err
	}
	return sw.result()
}

// stickyWriter remembers the first write error and turns later writes into
// no-ops, so render code can write without checking every call.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *stickyWriter) Printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *stickyWriter) result() error {
	if s.err != nil {
		return errors.New("E021").Wrap(s.err)
	}
	return nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w *stickyWriter, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		w.WriteString(escapeHTML(node.Text))
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, depth)
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render(), depth)
		}
	case vdom.KindRaw:
		w.WriteString(node.Text)
	default:
		return errors.New("E020").WithDetailf("Node kind %d (%s) cannot be rendered.", node.Kind, node.Kind)
	}
	return nil
}

func (r *Renderer) renderChildren(w *stickyWriter, children []*vdom.VNode, depth int) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w *stickyWriter, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.WriteString("<")
	w.WriteString(tag)
	r.renderAttributes(w, node.Props)
	w.WriteString(">")

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			w.WriteString("\n")
		}
		return nil
	}

	hasBlockChildren := !isCompactElement(tag) && hasElementChild(node)
	if r.config.Pretty && hasBlockChildren {
		w.WriteString("\n")
	}

	if err := r.renderChildren(w, node.Children, depth+1); err != nil {
		return err
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}
	w.Printf("</%s>", tag)
	if r.config.Pretty {
		w.WriteString("\n")
	}
	return nil
}

// hasElementChild reports whether any child renders as markup rather than text.
func hasElementChild(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind != vdom.KindText {
			return true
		}
	}
	return false
}

// renderAttributes renders all attributes in sorted key order.
func (r *Renderer) renderAttributes(w *stickyWriter, props vdom.Props) {
	if len(props) == 0 {
		return
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		// Internal props, callbacks and names that would break out of the
		// tag never reach the markup.
		if strings.HasPrefix(key, "_") || key == "key" || isFunc(value) || !isValidAttrName(key) {
			continue
		}

		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		}

		if isBooleanAttr(name) {
			if b, ok := value.(bool); ok {
				if b {
					w.Printf(" %s", name)
				}
				continue
			}
		}

		if s := attrToString(value); s != "" {
			w.Printf(` %s="%s"`, name, escapeAttr(s))
		}
	}
}

// isValidAttrName reports whether name can be written as an attribute name:
// non-empty, with no whitespace, control characters, quotes, '>', '/' or '='.
func isValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r >= 0x7f && r <= 0x9f:
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<', r == utf8.RuneError:
			return false
		}
	}
	return true
}

// isFunc reports whether value is a function of any signature.
func isFunc(value any) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	w.WriteString(strings.Repeat(r.config.Indent, depth))
}
