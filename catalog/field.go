package catalog

import "slices"

// Kind is the type of value a Field accepts.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	// KindUnion accepts a value matching any of Field.Variants.
	KindUnion Kind = "union"
)

// Field is one node of a parameter schema.
type Field struct {
	Name        string
	Kind        Kind
	Description string
	Required    bool
	// Default is merged into arguments that omit the field. Only top-level
	// defaults are applied.
	Default any
	// Enum restricts a string field to a fixed set of values.
	Enum []string

	// Fields lists object members in declaration order.
	Fields []Field
	// Items describes array elements.
	Items *Field
	// Variants are the alternatives of a union, tried in order.
	Variants []Field

	Geometry   *Geometry
	Collection *Collection
}

// Geometry names the positional and dimensional members of an object.
// Empty names are not checked.
type Geometry struct {
	X, Y string
	W, H string

	MinW, MaxW string
	MinH, MaxH string
}

// WidgetGeometry is the geometry of a widget-shaped object.
var WidgetGeometry = Geometry{
	X: "x", Y: "y", W: "w", H: "h",
	MinW: "minW", MaxW: "maxW", MinH: "minH", MaxH: "maxH",
}

// Collection describes an array of labeled entries sharing one key.
type Collection struct {
	// Label names a single entry in messages, e.g. "Breakpoint".
	Label string
	// Plural names the whole collection, e.g. "Breakpoints".
	Plural string
	// Key is the member whose values must be unique across entries.
	Key string
	// KeyNoun names the key values in messages, e.g. "widths".
	KeyNoun string
	Rules   []EntryRule
}

// EntryRule requires a positive number in one member of every entry.
type EntryRule struct {
	Field   string
	Integer bool
	// Noun completes "must have a positive ...", e.g. "width (w)".
	Noun string
}

// String declares an optional string field.
func String(name, description string) Field {
	return Field{Name: name, Kind: KindString, Description: description}
}

// Number declares an optional number field.
func Number(name, description string) Field {
	return Field{Name: name, Kind: KindNumber, Description: description}
}

// Boolean declares an optional boolean field.
func Boolean(name, description string) Field {
	return Field{Name: name, Kind: KindBoolean, Description: description}
}

// Object declares an optional object field with the given members.
func Object(name, description string, fields ...Field) Field {
	return Field{Name: name, Kind: KindObject, Description: description, Fields: fields}
}

// Array declares an optional array field.
func Array(name, description string, items Field) Field {
	return Field{Name: name, Kind: KindArray, Description: description, Items: &items}
}

// Union declares an optional field accepting any of variants.
func Union(name, description string, variants ...Field) Field {
	return Field{Name: name, Kind: KindUnion, Description: description, Variants: variants}
}

// Enum declares an optional string field restricted to values.
func Enum(name, description string, values ...string) Field {
	return Field{Name: name, Kind: KindString, Description: description, Enum: values}
}

// Of returns an unnamed field of the given kind, for union variants and
// array items.
func Of(kind Kind) Field {
	return Field{Kind: kind}
}

// AsRequired returns a copy of f marked required.
func (f Field) AsRequired() Field {
	f.Required = true
	return f
}

// WithDefault returns a copy of f with a default value.
func (f Field) WithDefault(v any) Field {
	f.Default = v
	return f
}

// WithGeometry returns a copy of f annotated with g.
func (f Field) WithGeometry(g Geometry) Field {
	f.Geometry = &g
	return f
}

// WithCollection returns a copy of f annotated with c.
func (f Field) WithCollection(c Collection) Field {
	f.Collection = &c
	return f
}

// Member returns the object member with the given name.
func (f Field) Member(name string) (Field, bool) {
	for _, m := range f.Fields {
		if m.Name == name {
			return m, true
		}
	}
	return Field{}, false
}

// Variant returns the first union variant accepting values of kind.
func (f Field) Variant(kind Kind) (Field, bool) {
	i := slices.IndexFunc(f.Variants, func(v Field) bool { return v.Kind == kind })
	if i < 0 {
		return Field{}, false
	}
	return f.Variants[i], true
}

// JSONSchema exports f as a JSON Schema fragment.
func (f Field) JSONSchema() map[string]any {
	s := map[string]any{}
	switch f.Kind {
	case KindUnion:
		variants := make([]any, 0, len(f.Variants))
		for _, v := range f.Variants {
			variants = append(variants, v.JSONSchema())
		}
		s["oneOf"] = variants
	case KindObject:
		s["type"] = "object"
		props := make(map[string]any, len(f.Fields))
		var required []string
		for _, m := range f.Fields {
			props[m.Name] = m.JSONSchema()
			if m.Required {
				required = append(required, m.Name)
			}
		}
		if len(props) > 0 || f.Name == "" {
			s["properties"] = props
		}
		if len(required) > 0 {
			s["required"] = required
		}
	case KindArray:
		s["type"] = "array"
		if f.Items != nil {
			s["items"] = f.Items.JSONSchema()
		}
	default:
		s["type"] = string(f.Kind)
	}
	if len(f.Enum) > 0 {
		s["enum"] = slices.Clone(f.Enum)
	}
	if f.Description != "" {
		s["description"] = f.Description
	}
	if f.Default != nil {
		s["default"] = f.Default
	}
	return s
}
