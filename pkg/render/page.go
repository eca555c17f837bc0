package render

import (
	"io"

	"github.com/vango-dev/pagelayout/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains extra meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS. It is written verbatim.
	Styles []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	sw := &stickyWriter{w: w}
	sw.WriteString("<!DOCTYPE html>\n")
	sw.Printf(`<html lang="%s">`+"\n", escapeAttr(lang))
	r.renderHead(sw, page)
	sw.WriteString("<body>\n")

	if err := r.renderNode(sw, page.Body, 0); err != nil {
		return err
	}
	if !r.config.Pretty && page.Body != nil {
		sw.WriteString("\n")
	}

	sw.WriteString("</body>\n</html>\n")
	return sw.result()
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w *stickyWriter, page PageData) {
	w.WriteString("<head>\n")
	w.WriteString(`  <meta charset="utf-8">` + "\n")
	w.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		w.Printf("  <title>%s</title>\n", escapeHTML(page.Title))
	}

	for _, meta := range page.Meta {
		w.WriteString("  <meta")
		if meta.Name != "" {
			w.Printf(` name="%s"`, escapeAttr(meta.Name))
		}
		if meta.Property != "" {
			w.Printf(` property="%s"`, escapeAttr(meta.Property))
		}
		if meta.Content != "" {
			w.Printf(` content="%s"`, escapeAttr(meta.Content))
		}
		w.WriteString(">\n")
	}

	for _, href := range page.StyleSheets {
		w.Printf(`  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}

	for _, style := range page.Styles {
		w.Printf("  <style>%s</style>\n", style)
	}

	w.WriteString("</head>\n")
}
