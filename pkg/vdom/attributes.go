package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

func ID(id string) Attr { return attr("id", id) }

// Class joins the given classes. Empty strings are skipped.
func Class(classes ...string) Attr {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility

func Role(role string) Attr       { return attr("role", role) }
func AriaLabel(label string) Attr { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }
func AriaCurrent(v string) Attr   { return attr("aria-current", v) }

func Hidden() Attr                { return attr("hidden", true) }
func TitleAttr(title string) Attr { return attr("title", title) }
func Lang(lang string) Attr       { return attr("lang", lang) }

// Links

func Href(url string) Attr      { return attr("href", url) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel string) Attr       { return attr("rel", rel) }

// Form and media

func Name(name string) Attr   { return attr("name", name) }
func Type(t string) Attr      { return attr("type", t) }
func Value(value string) Attr { return attr("value", value) }
func Src(url string) Attr     { return attr("src", url) }
func Alt(text string) Attr    { return attr("alt", text) }
func Checked() Attr           { return attr("checked", true) }
func Disabled() Attr          { return attr("disabled", true) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }
