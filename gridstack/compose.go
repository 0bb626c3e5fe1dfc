package gridstack

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/jonwraymond/gridstack-mcp/catalog"
	"github.com/jonwraymond/gridstack-mcp/validate"
)

//go:embed content/layout.html.tmpl
var layoutTemplate string

//go:embed content/api-reference.md
var apiReference string

var layout = template.Must(template.New("layout").Funcs(template.FuncMap{
	"attrs": Widget.attributes,
	"label": Widget.label,
}).Parse(layoutTemplate))

// Widget is one child of a generated page layout.
type Widget struct {
	ID       string `json:"id,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	W        int    `json:"w"`
	H        int    `json:"h"`
	MinW     int    `json:"minW,omitempty"`
	MaxW     int    `json:"maxW,omitempty"`
	MinH     int    `json:"minH,omitempty"`
	MaxH     int    `json:"maxH,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	NoResize bool   `json:"noResize,omitempty"`
	NoMove   bool   `json:"noMove,omitempty"`
	Content  string `json:"content,omitempty"`
}

func (w Widget) attributes() string {
	attrs := []string{
		fmt.Sprintf(`gs-x="%d"`, w.X),
		fmt.Sprintf(`gs-y="%d"`, w.Y),
		fmt.Sprintf(`gs-w="%d"`, orOne(w.W)),
		fmt.Sprintf(`gs-h="%d"`, orOne(w.H)),
	}
	if w.ID != "" {
		attrs = append(attrs, fmt.Sprintf(`gs-id="%s"`, w.ID))
	}
	for _, bound := range []struct {
		name string
		v    int
	}{{"gs-min-w", w.MinW}, {"gs-max-w", w.MaxW}, {"gs-min-h", w.MinH}, {"gs-max-h", w.MaxH}} {
		if bound.v != 0 {
			attrs = append(attrs, fmt.Sprintf(`%s="%d"`, bound.name, bound.v))
		}
	}
	if w.Locked {
		attrs = append(attrs, `gs-locked="true"`)
	}
	if w.NoResize {
		attrs = append(attrs, `gs-no-resize="true"`)
	}
	if w.NoMove {
		attrs = append(attrs, `gs-no-move="true"`)
	}
	return strings.Join(attrs, " ")
}

func (w Widget) label() string {
	if w.Content != "" {
		return w.Content
	}
	if w.ID != "" {
		return "Widget " + w.ID
	}
	return "Widget Item"
}

func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// PageOptions configure HTMLPage. CellHeight and Margin hold a number or a
// CSS string.
type PageOptions struct {
	Class      string   `json:"class,omitempty"`
	Column     int      `json:"column"`
	CellHeight any      `json:"cellHeight"`
	Margin     any      `json:"margin"`
	Children   []Widget `json:"children,omitempty"`
}

// HTMLPage renders a standalone page that initializes a grid with opts.
func HTMLPage(opts PageOptions) (string, error) {
	if opts.Column == 0 {
		opts.Column = 12
	}
	if opts.CellHeight == nil {
		opts.CellHeight = "auto"
	}
	if opts.Margin == nil {
		opts.Margin = 10
	}

	var enc bytes.Buffer
	e := json.NewEncoder(&enc)
	e.SetEscapeHTML(false)
	e.SetIndent("", "    ")
	if err := e.Encode(opts); err != nil {
		return "", fmt.Errorf("encode grid options: %w", err)
	}

	gridClass := "grid-stack"
	if opts.Class != "" {
		gridClass += " " + opts.Class
	}

	var out strings.Builder
	err := layout.Execute(&out, struct {
		GridClass   string
		Children    []Widget
		OptionsJSON string
	}{gridClass, opts.Children, strings.TrimSuffix(enc.String(), "\n")})
	if err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}
	return strings.TrimSuffix(out.String(), "\n"), nil
}

// Colors override item colors in CustomCSS. Empty values are skipped.
type Colors struct {
	Background string
	Border     string
	Hover      string
}

// StyleOptions configure CustomCSS. CellHeight and Margin hold a number or
// a CSS string; zero values are skipped.
type StyleOptions struct {
	CellHeight any
	Margin     any
	Columns    int
	Colors     *Colors
}

// CustomCSS renders a stylesheet customizing grid spacing, colors and
// column widths.
func CustomCSS(opts StyleOptions) string {
	columns := opts.Columns
	if columns == 0 {
		columns = 12
	}

	var b strings.Builder
	b.WriteString("/* GridStack Custom Styles */\n")

	b.WriteString(".grid-stack {\n")
	if v, ok := cssLength(opts.Margin); ok {
		fmt.Fprintf(&b, "  margin: %s;\n", v)
	}
	b.WriteString("}\n\n")

	if v, ok := cssLength(opts.CellHeight); ok {
		b.WriteString(".grid-stack > .grid-stack-item > .grid-stack-item-content {\n")
		fmt.Fprintf(&b, "  min-height: %s;\n", v)
		b.WriteString("}\n\n")
	}

	if c := opts.Colors; c != nil {
		b.WriteString(".grid-stack-item-content {\n")
		if c.Background != "" {
			fmt.Fprintf(&b, "  background-color: %s;\n", c.Background)
		}
		if c.Border != "" {
			fmt.Fprintf(&b, "  border-color: %s;\n", c.Border)
		}
		b.WriteString("}\n\n")

		if c.Hover != "" {
			b.WriteString(".grid-stack-item:hover .grid-stack-item-content {\n")
			fmt.Fprintf(&b, "  background-color: %s;\n", c.Hover)
			b.WriteString("}\n\n")
		}
	}

	if columns != 12 {
		fmt.Fprintf(&b, "/* Custom %d-column grid */\n", columns)
		step := 100 / float64(columns)
		for i := 1; i <= columns; i++ {
			fmt.Fprintf(&b, ".grid-stack > .grid-stack-item[gs-w=\"%d\"] { width: %s%%; }\n",
				i, strconv.FormatFloat(step*float64(i), 'f', 6, 64))
			fmt.Fprintf(&b, ".grid-stack > .grid-stack-item[gs-x=\"%d\"] { left: %s%%; }\n",
				i-1, strconv.FormatFloat(step*float64(i-1), 'f', 6, 64))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// cssLength renders numbers as pixels and passes strings through.
func cssLength(v any) (string, bool) {
	if n, ok := validate.AsNumber(v); ok {
		if n == 0 {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64) + "px", true
	}
	if s, ok := v.(string); ok && s != "" {
		return s, true
	}
	return "", false
}

var categoryHeadings = []struct {
	tag     string
	heading string
}{
	{CategoryCore, "Core Grid Management"},
	{CategoryWidget, "Widget Management"},
	{CategoryLayout, "Layout Operations"},
	{CategorySerialization, "Serialization"},
	{CategoryResponsive, "Responsive"},
	{CategoryUtility, "Utilities"},
	{CategoryEvents, "Event Management"},
}

// APIDocumentation renders the markdown API reference for the operations
// in cat, grouped by category.
func APIDocumentation(cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString("# GridStack MCP Server API Documentation\n\n")
	b.WriteString("## Overview\n")
	b.WriteString("This MCP server provides comprehensive access to GridStack.js functionality through tools and resources.\n\n")
	b.WriteString("## Available Tools\n")

	descs := cat.List()
	for _, c := range categoryHeadings {
		var lines []string
		for _, d := range descs {
			if len(d.Tags) > 0 && d.Tags[0] == c.tag {
				lines = append(lines, fmt.Sprintf("- `%s` - %s", d.Name, d.Summary))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n%s\n", c.heading, strings.Join(lines, "\n"))
	}

	b.WriteString("\n## Event Types\n")
	for _, ev := range Events {
		fmt.Fprintf(&b, "- `%s`\n", ev)
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSuffix(apiReference, "\n"))
	return b.String()
}
