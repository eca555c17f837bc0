// Package render provides server-side rendering (SSR) of vdom trees.
//
// The render package converts VNode trees into HTML strings or streams:
//
//   - Text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Deterministic, sorted attribute output
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Body:  layout.PageLayout(...),
//	    Title: "Dashboard",
//	})
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted using KindRaw nodes,
// but should only be used with trusted content.
package render
