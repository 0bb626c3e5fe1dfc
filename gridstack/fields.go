package gridstack

import "github.com/jonwraymond/gridstack-mcp/catalog"

// LayoutModes are the re-layout strategies accepted by compact and column.
var LayoutModes = []string{"moveScale", "move", "scale", "none", "list"}

// Events are the grid event names accepted by on and off.
var Events = []string{
	"added", "change", "disable", "drag", "dragstart", "dragstop",
	"dropped", "enable", "removed", "resize", "resizestart", "resizestop",
}

var (
	stringOrNumber  = []catalog.Field{catalog.Of(catalog.KindString), catalog.Of(catalog.KindNumber)}
	numberOrString  = []catalog.Field{catalog.Of(catalog.KindNumber), catalog.Of(catalog.KindString)}
	booleanOrString = []catalog.Field{catalog.Of(catalog.KindBoolean), catalog.Of(catalog.KindString)}
	numberOrAuto    = []catalog.Field{catalog.Of(catalog.KindNumber), catalog.Enum("", "", "auto")}
)

var resizeGeometry = catalog.Geometry{W: "width", H: "height"}

var breakpointRules = catalog.Collection{
	Label:   "Breakpoint",
	Plural:  "Breakpoints",
	Key:     "w",
	KeyNoun: "widths",
	Rules: []catalog.EntryRule{
		{Field: "w", Noun: "width (w)"},
		{Field: "c", Integer: true, Noun: "integer columns (c)"},
	},
}

func params(fields ...catalog.Field) catalog.Field {
	return catalog.Object("", "", fields...)
}

func element(description string) catalog.Field {
	return catalog.String("el", description).AsRequired()
}

func layoutMode(description string) catalog.Field {
	return catalog.Enum("layout", description, LayoutModes...).WithDefault("moveScale")
}

func eventName(description string) catalog.Field {
	return catalog.Enum("eventName", description, Events...).AsRequired()
}

func flag(name, description string, def bool) catalog.Field {
	return catalog.Boolean(name, description).WithDefault(def)
}

// sizeFields are the bound members shared by widget-shaped objects.
func sizeFields(describe bool) []catalog.Field {
	d := func(s string) string {
		if describe {
			return s
		}
		return ""
	}
	return []catalog.Field{
		catalog.Number("x", d("X position")),
		catalog.Number("y", d("Y position")),
		catalog.Number("w", d("Width in columns")),
		catalog.Number("h", d("Height in rows")),
		catalog.Number("minW", d("Minimum width")),
		catalog.Number("maxW", d("Maximum width")),
		catalog.Number("minH", d("Minimum height")),
		catalog.Number("maxH", d("Maximum height")),
	}
}

func lockFields() []catalog.Field {
	return []catalog.Field{
		catalog.Boolean("locked", "Lock widget position/size"),
		catalog.Boolean("noResize", "Disable resizing"),
		catalog.Boolean("noMove", "Disable moving"),
	}
}

func widgetFields() []catalog.Field {
	fields := []catalog.Field{
		catalog.Union("id", "Unique widget identifier", stringOrNumber...),
	}
	fields = append(fields, sizeFields(true)...)
	fields = append(fields, lockFields()...)
	return append(fields,
		catalog.Boolean("autoPosition", "Auto-position widget"),
		catalog.Boolean("resizeToContent", "Resize to content"),
		catalog.String("content", "Widget HTML content"),
	)
}

func updateFields() []catalog.Field {
	fields := sizeFields(false)
	fields = append(fields, lockFields()...)
	return append(fields, catalog.String("content", ""))
}

func makeWidgetFields() []catalog.Field {
	size := sizeFields(false)
	fields := append([]catalog.Field{}, size[:4]...)
	fields = append(fields, catalog.Boolean("autoPosition", ""))
	fields = append(fields, size[4:]...)
	return append(fields, lockFields()...)
}

func gridOptionFields() []catalog.Field {
	return []catalog.Field{
		catalog.Union("acceptWidgets", "Accept widgets from other grids or external elements", booleanOrString...),
		catalog.Boolean("alwaysShowResizeHandle", "Always show resize handles"),
		catalog.Boolean("animate", "Enable animations"),
		catalog.Boolean("auto", "Auto-position widgets"),
		catalog.Union("cellHeight", "Cell height (px, 'auto', 'initial', CSS units)", numberOrString...),
		catalog.Number("cellHeightThrottle", "Throttle time for cellHeight='auto' (ms)"),
		catalog.Union("column", "Number of columns or 'auto' for nested grids", numberOrAuto...),
		catalog.Boolean("disableDrag", "Disable dragging of widgets"),
		catalog.Boolean("disableResize", "Disable resizing of widgets"),
		catalog.Boolean("float", "Enable floating widgets"),
		catalog.String("handle", "Draggable handle selector"),
		catalog.Union("margin", "Gap between grid items (px or CSS units)", numberOrString...),
		catalog.Number("maxRow", "Maximum number of rows"),
		catalog.Number("minRow", "Minimum number of rows"),
		catalog.Union("removable", "Allow widgets to be removed by dragging out", booleanOrString...),
		catalog.Boolean("rtl", "Right-to-left support"),
		catalog.Boolean("staticGrid", "Make grid static (no drag/resize)"),
	}
}
