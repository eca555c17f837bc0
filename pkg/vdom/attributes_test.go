package vdom

import "testing"

func TestAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attr
		key   string
		value any
	}{
		{"ID", ID("main"), "id", "main"},
		{"Class", Class("a", "", " b "), "class", "a b"},
		{"Data", Data("slot", "header"), "data-slot", "header"},
		{"Role", Role("navigation"), "role", "navigation"},
		{"AriaLabel", AriaLabel("Sidebar"), "aria-label", "Sidebar"},
		{"AriaHidden", AriaHidden(true), "aria-hidden", true},
		{"Hidden", Hidden(), "hidden", true},
		{"Lang", Lang("en"), "lang", "en"},
		{"Href", Href("/docs"), "href", "/docs"},
		{"Rel", Rel("stylesheet"), "rel", "stylesheet"},
		{"Src", Src("/a.png"), "src", "/a.png"},
		{"Disabled", Disabled(), "disabled", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}
