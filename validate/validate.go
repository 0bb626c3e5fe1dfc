package validate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jonwraymond/gridstack-mcp/catalog"
)

// Outcome is the result of validating one set of parameters.
type Outcome struct {
	Valid bool
	// Violations are in check order.
	Violations []string
}

// Validate checks params against desc.
func Validate(desc catalog.Descriptor, params map[string]any) Outcome {
	root := desc.Params
	root.Kind = catalog.KindObject
	if params == nil {
		params = map[string]any{}
	}
	return Value(root, params)
}

// Value checks a single value against f. Nothing is reported for an absent
// value unless a nested member is required.
func Value(f catalog.Field, v any) Outcome {
	c := &checker{}
	c.types(f, v, f.Name)
	walk(f, v, f.Name, c.required)
	walk(f, v, f.Name, c.geometry)
	walk(f, v, f.Name, c.collection)
	return Outcome{
		Valid:      len(c.violations) == 0,
		Violations: c.violations,
	}
}

type checker struct {
	violations []string
}

func (c *checker) addf(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
}

func (c *checker) types(f catalog.Field, v any, path string) {
	if Absent(v) {
		return
	}
	if f.Kind == catalog.KindUnion {
		variant, ok := matchVariant(f, v)
		if !ok {
			c.addf("%s must be %s", label(path), expected(f))
			return
		}
		c.types(variant, v, path)
		return
	}
	if !kindOf(f.Kind, v) {
		c.addf("%s must be %s", label(path), expected(f))
		return
	}

	switch f.Kind {
	case catalog.KindString:
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, v.(string)) {
			c.addf("%s must be %s", label(path), expected(f))
		}
	case catalog.KindObject:
		m, _ := asObject(v)
		for _, member := range f.Fields {
			c.types(member, m[member.Name], join(path, member.Name))
		}
	case catalog.KindArray:
		if f.Items == nil || f.Collection != nil {
			return
		}
		items, _ := asArray(v)
		for i, item := range items {
			c.types(*f.Items, item, index(path, i))
		}
	}
}

func (c *checker) required(f catalog.Field, v any, path string) {
	if f.Kind != catalog.KindObject {
		return
	}
	m, ok := asObject(v)
	if !ok {
		return
	}
	for _, member := range f.Fields {
		if member.Required && Absent(m[member.Name]) {
			c.addf("%s is required", label(join(path, member.Name)))
		}
	}
}

func (c *checker) geometry(f catalog.Field, v any, _ string) {
	if f.Geometry == nil {
		return
	}
	m, ok := asObject(v)
	if !ok {
		return
	}
	g := f.Geometry
	num := func(key string) (float64, bool) {
		if key == "" {
			return 0, false
		}
		return AsNumber(m[key])
	}

	if x, ok := num(g.X); ok && (x < 0 || !IsInteger(x)) {
		c.addf("x position must be a non-negative integer")
	}
	if y, ok := num(g.Y); ok && (y < 0 || !IsInteger(y)) {
		c.addf("y position must be a non-negative integer")
	}
	w, hasW := num(g.W)
	if hasW && (w <= 0 || !IsInteger(w)) {
		c.addf("width must be a positive integer")
	}
	h, hasH := num(g.H)
	if hasH && (h <= 0 || !IsInteger(h)) {
		c.addf("height must be a positive integer")
	}

	minW, hasMinW := num(g.MinW)
	maxW, hasMaxW := num(g.MaxW)
	minH, hasMinH := num(g.MinH)
	maxH, hasMaxH := num(g.MaxH)

	if hasMinW && hasMaxW && minW > maxW {
		c.addf("minW cannot be greater than maxW")
	}
	if hasMinH && hasMaxH && minH > maxH {
		c.addf("minH cannot be greater than maxH")
	}
	if hasW && hasMinW && w < minW {
		c.addf("width cannot be less than minW")
	}
	if hasW && hasMaxW && w > maxW {
		c.addf("width cannot be greater than maxW")
	}
	if hasH && hasMinH && h < minH {
		c.addf("height cannot be less than minH")
	}
	if hasH && hasMaxH && h > maxH {
		c.addf("height cannot be greater than maxH")
	}
}

func (c *checker) collection(f catalog.Field, v any, _ string) {
	col := f.Collection
	if col == nil {
		return
	}
	entries, ok := asArray(v)
	if !ok {
		return
	}

	var keys []float64
	for i, entry := range entries {
		m, ok := asObject(entry)
		if !ok {
			c.addf("%s at index %d must be an object", col.Label, i)
			continue
		}
		for _, rule := range col.Rules {
			n, ok := AsNumber(m[rule.Field])
			if !ok || n <= 0 || (rule.Integer && !IsInteger(n)) {
				c.addf("%s at index %d must have a positive %s", col.Label, i, rule.Noun)
			}
		}
		if k, ok := AsNumber(m[col.Key]); ok {
			keys = append(keys, k)
		}
	}

	seen := make(map[float64]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			c.addf("%s cannot have duplicate %s", col.Plural, col.KeyNoun)
			return
		}
		seen[k] = struct{}{}
	}
}

// walk visits f and every present descendant in schema order.
func walk(f catalog.Field, v any, path string, visit func(catalog.Field, any, string)) {
	if Absent(v) {
		return
	}
	if f.Kind == catalog.KindUnion {
		if variant, ok := matchVariant(f, v); ok {
			walk(variant, v, path, visit)
		}
		return
	}
	visit(f, v, path)

	switch f.Kind {
	case catalog.KindObject:
		m, ok := asObject(v)
		if !ok {
			return
		}
		for _, member := range f.Fields {
			walk(member, m[member.Name], join(path, member.Name), visit)
		}
	case catalog.KindArray:
		if f.Items == nil || f.Collection != nil {
			return
		}
		items, _ := asArray(v)
		for i, item := range items {
			walk(*f.Items, item, index(path, i), visit)
		}
	}
}

func matchVariant(f catalog.Field, v any) (catalog.Field, bool) {
	for _, variant := range f.Variants {
		if !kindOf(variant.Kind, v) {
			continue
		}
		if variant.Kind == catalog.KindString && len(variant.Enum) > 0 && !slices.Contains(variant.Enum, v.(string)) {
			continue
		}
		variant.Name = f.Name
		return variant, true
	}
	return catalog.Field{}, false
}

func kindOf(k catalog.Kind, v any) bool {
	switch k {
	case catalog.KindString:
		_, ok := v.(string)
		return ok
	case catalog.KindNumber:
		_, ok := AsNumber(v)
		return ok
	case catalog.KindBoolean:
		_, ok := v.(bool)
		return ok
	case catalog.KindObject:
		_, ok := asObject(v)
		return ok
	case catalog.KindArray:
		_, ok := asArray(v)
		return ok
	}
	return false
}

func expected(f catalog.Field) string {
	switch f.Kind {
	case catalog.KindUnion:
		parts := make([]string, 0, len(f.Variants))
		for _, v := range f.Variants {
			parts = append(parts, expected(v))
		}
		return strings.Join(parts, " or ")
	case catalog.KindString:
		if len(f.Enum) > 0 {
			quoted := make([]string, len(f.Enum))
			for i, e := range f.Enum {
				quoted[i] = strconv.Quote(e)
			}
			return "one of " + strings.Join(quoted, ", ")
		}
		return "a string"
	case catalog.KindNumber:
		return "a number"
	case catalog.KindBoolean:
		return "a boolean"
	case catalog.KindObject:
		return "an object"
	case catalog.KindArray:
		return "an array"
	}
	return string(f.Kind)
}

func label(path string) string {
	if path == "" {
		return "arguments"
	}
	return path
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
