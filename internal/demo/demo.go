// Package demo is the example page served and published by the CLI.
package demo

import (
	_ "embed"

	"github.com/vango-dev/pagelayout/pkg/layout"
	"github.com/vango-dev/pagelayout/pkg/render"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

//go:embed layout.css
var stylesheet string

// Stylesheet returns the CSS that lays out the PageLayout grid.
func Stylesheet() string {
	return stylesheet
}

// App declares the parts in sidebar, header, main order and lets the layout
// place them.
func App(l *layout.Layout) *vdom.VNode {
	if l == nil {
		return layout.PageLayout(app()...)
	}
	return l.Render(app()...)
}

func app() []any {
	return []any{
		layout.Page.Sidebar("Sidebar"),
		layout.Page.Header("Header"),
		layout.Page.Main("Main"),
	}
}

// Page wraps App in a full document.
func Page(l *layout.Layout, title, lang string) render.PageData {
	return render.PageData{
		Body:   App(l),
		Title:  title,
		Lang:   lang,
		Styles: []string{stylesheet},
	}
}
