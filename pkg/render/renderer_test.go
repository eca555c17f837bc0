package render

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/pagelayout/internal/errors"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

var errTestWrite = stderrors.New("test write error")

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "nil node",
			node: nil,
			want: "",
		},
		{
			name: "text",
			node: vdom.Text("Hello, World!"),
			want: "Hello, World!",
		},
		{
			name: "text escaping",
			node: vdom.Text("<script>alert('xss')</script>"),
			want: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name: "nested elements",
			node: vdom.Div(vdom.Class("container"), vdom.H1("Title"), vdom.P("Content")),
			want: `<div class="container"><h1>Title</h1><p>Content</p></div>`,
		},
		{
			name: "void input",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "void br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "void img",
			node: vdom.Img(vdom.Src("/image.png"), vdom.Alt("test")),
			want: `<img alt="test" src="/image.png">`,
		},
		{
			name: "boolean attributes",
			node: vdom.Input(vdom.Type("checkbox"), vdom.Checked(), vdom.Disabled()),
			want: `<input checked disabled type="checkbox">`,
		},
		{
			name: "false boolean attribute omitted",
			node: &vdom.VNode{Kind: vdom.KindElement, Tag: "div", Props: vdom.Props{"hidden": false}},
			want: `<div></div>`,
		},
		{
			name: "attribute escaping",
			node: vdom.Div(vdom.TitleAttr(`"quoted" & <b>`)),
			want: `<div title="&quot;quoted&quot; &amp; &lt;b&gt;"></div>`,
		},
		{
			name: "internal props skipped",
			node: vdom.Div(vdom.Key("k"), vdom.Attr{Key: "_state", Value: 1}, vdom.Attr{Key: "onclick", Value: func() {}}),
			want: `<div></div>`,
		},
		{
			name: "react-style attribute names",
			node: &vdom.VNode{Kind: vdom.KindElement, Tag: "label", Props: vdom.Props{"className": "x", "htmlFor": "id"}},
			want: `<label class="x" for="id"></label>`,
		},
		{
			name: "numeric attribute",
			node: vdom.Div(vdom.Attr{Key: "data-count", Value: 3}),
			want: `<div data-count="3"></div>`,
		},
		{
			name: "fragment",
			node: vdom.Fragment(vdom.Span("a"), vdom.Span("b")),
			want: `<span>a</span><span>b</span>`,
		},
		{
			name: "component",
			node: vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.Em("hi") })),
			want: `<div><em>hi</em></div>`,
		},
		{
			name: "empty component",
			node: &vdom.VNode{Kind: vdom.KindComponent},
			want: ``,
		},
		{
			name: "raw html",
			node: vdom.Div(vdom.Raw("<b>bold</b>")),
			want: `<div><b>bold</b></div>`,
		},
		{
			name: "tagged element renders like its element",
			node: vdom.Tagged("widget", vdom.Aside(vdom.AriaLabel("Sidebar"), "S")),
			want: `<aside aria-label="Sidebar">S</aside>`,
		},
	}

	renderer := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSkipsInvalidAttributeNames(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "quote in data key",
			node: vdom.Div(vdom.Data(`x" onload="alert(1)`, "v"), vdom.ID("ok")),
			want: `<div id="ok"></div>`,
		},
		{
			name: "space in name",
			node: vdom.Div(vdom.Attr{Key: "a b", Value: "v"}),
			want: `<div></div>`,
		},
		{
			name: "tag breakout",
			node: vdom.Div(vdom.Attr{Key: "x><script", Value: "v"}, "t"),
			want: `<div>t</div>`,
		},
		{
			name: "equals and slash",
			node: vdom.Span(vdom.Attr{Key: "a=b", Value: "v"}, vdom.Attr{Key: "c/d", Value: "v"}),
			want: `<span></span>`,
		},
		{
			name: "control character",
			node: vdom.Span(vdom.Attr{Key: "a\x00b", Value: "v"}),
			want: `<span></span>`,
		},
		{
			name: "valid names kept",
			node: vdom.Div(vdom.Data("user-id", "7"), vdom.AriaLabel("Menu"), vdom.Attr{Key: "xml:lang", Value: "en"}),
			want: `<div aria-label="Menu" data-user-id="7" xml:lang="en"></div>`,
		},
	}

	renderer := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("render error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	_, err := renderer.RenderToString(vdom.Div(&vdom.VNode{Kind: vdom.VKind(99)}))
	if !stderrors.Is(err, errors.New("E020")) {
		t.Errorf("err = %v, want E020", err)
	}
}

func TestRenderWriteError(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	node := vdom.Div(vdom.Class("a"), vdom.P("x"), vdom.P("y"))

	for failAt := 1; failAt <= 5; failAt++ {
		w := &failingWriter{FailAt: failAt}
		err := renderer.RenderToWriter(w, node)
		if !stderrors.Is(err, errTestWrite) {
			t.Fatalf("failAt=%d: err = %v, want %v", failAt, err, errTestWrite)
		}
		if !stderrors.Is(err, errors.New("E021")) {
			t.Fatalf("failAt=%d: err = %v, want E021", failAt, err)
		}
		if w.Writes != failAt {
			t.Errorf("failAt=%d: kept writing after failure (%d writes)", failAt, w.Writes)
		}
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.Class("a"),
		vdom.P("x"),
		vdom.Ul(vdom.Li("one")),
	)
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		`<div class="a">`,
		`  <p>x</p>`,
		`  <ul>`,
		`    <li>one</li>`,
		`  </ul>`,
		`</div>`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPrettyCustomIndent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})
	got, err := renderer.RenderToString(vdom.Div(vdom.Span("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<div>\n\t<span>x</span>\n</div>\n" {
		t.Errorf("got %q", got)
	}
}
