package gridstack

import (
	"fmt"

	"github.com/jonwraymond/gridstack-mcp/catalog"
	"github.com/jonwraymond/gridstack-mcp/synth"
	"github.com/jonwraymond/gridstack-mcp/validate"
)

// piece renders one substitution of an instruction pattern.
type piece func(p map[string]any) (string, error)

// code builds a template that fills format with pieces in order.
func code(format string, pieces ...piece) catalog.TemplateFunc {
	return func(p map[string]any) (string, error) {
		args := make([]any, len(pieces))
		for i, pc := range pieces {
			s, err := pc(p)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		return fmt.Sprintf(format, args...), nil
	}
}

// quoted renders a member as a single-quoted string literal.
func quoted(key string) piece {
	return func(p map[string]any) (string, error) {
		return synth.Quote(text(p[key])), nil
	}
}

// literal renders a scalar member as JavaScript source.
func literal(key string) piece {
	return func(p map[string]any) (string, error) {
		s, err := synth.Literal(p[key])
		if err != nil {
			return "", fmt.Errorf("%s: %w", key, err)
		}
		return s, nil
	}
}

// pretty renders a structured member as indented JSON.
func pretty(key string) piece {
	return func(p map[string]any) (string, error) {
		s, err := synth.JSON(p[key])
		if err != nil {
			return "", fmt.Errorf("%s: %w", key, err)
		}
		return s, nil
	}
}

// compact renders a structured member as single-line JSON.
func compact(key string) piece {
	return func(p map[string]any) (string, error) {
		s, err := synth.CompactJSON(p[key])
		if err != nil {
			return "", fmt.Errorf("%s: %w", key, err)
		}
		return s, nil
	}
}

// verbatim inserts a string member as source code.
func verbatim(key string) piece {
	return func(p map[string]any) (string, error) {
		return text(p[key]), nil
	}
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func floatCode(p map[string]any) (string, error) {
	if p["val"] == nil {
		return "grid.float();", nil
	}
	return code("grid.float(%s);", literal("val"))(p)
}

func cellHeightCode(p map[string]any) (string, error) {
	if p["val"] == nil {
		return "grid.cellHeight();", nil
	}
	return code("grid.cellHeight(%s, %s);", literal("val"), literal("update"))(p)
}

// marginCode appends the unit to numeric margins when it is not px.
func marginCode(p map[string]any) (string, error) {
	unit := text(p["unit"])
	if _, ok := validate.AsNumber(p["value"]); ok && unit != "" && unit != "px" {
		n, err := synth.CompactJSON(p["value"])
		if err != nil {
			return "", fmt.Errorf("value: %w", err)
		}
		return fmt.Sprintf("grid.margin(%s);", synth.Quote(n+unit)), nil
	}
	return code("grid.margin(%s);", literal("value"))(p)
}

// loadCode passes string layouts through unchanged, since they already
// hold serialized layout data.
func loadCode(p map[string]any) (string, error) {
	if _, ok := p["layout"].(string); ok {
		return code("grid.load(%s, %s);", verbatim("layout"), literal("addAndRemove"))(p)
	}
	return code("grid.load(%s, %s);", pretty("layout"), literal("addAndRemove"))(p)
}

func enableCode(p map[string]any) (string, error) {
	if truthy(p["doEnable"]) {
		return "grid.enable();", nil
	}
	return "grid.disable();", nil
}

func fixed(s string) catalog.TemplateFunc {
	return func(map[string]any) (string, error) { return s, nil }
}
