package feed

import (
	"html"
	"strings"
	"text/template"
)

// TemplateFuncs returns a map of template helper functions
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"escape": html.EscapeString,
		"cdata":  escapeCDATA,
	}
}

// escapeCDATA makes s safe to place between <![CDATA[ and ]]> by splitting
// any "]]>" across two adjacent CDATA sections.
func escapeCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
