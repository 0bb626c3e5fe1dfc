package gridstack

import (
	"github.com/jonwraymond/gridstack-mcp/catalog"
)

// Namespace groups every operation and resource of the gridstack surface.
const Namespace = "gridstack"

// OperationVersion is reported for every operation.
const OperationVersion = "1.0.0"

// Operation categories, stored as the first tag of every descriptor.
const (
	CategoryCore          = "core"
	CategoryWidget        = "widget"
	CategoryLayout        = "layout"
	CategorySerialization = "serialization"
	CategoryResponsive    = "responsive"
	CategoryUtility       = "utility"
	CategoryEvents        = "events"
)

type op struct {
	name     string
	method   string
	category string
	summary  string
	params   catalog.Field
	template catalog.TemplateFunc
}

// Operations returns the descriptors in registration order.
func Operations() []catalog.Descriptor {
	ops := []op{
		{
			name: "gridstack_init", method: "init", category: CategoryCore,
			summary: "Initialize a new GridStack instance with specified options",
			params: params(
				catalog.String("selector", "CSS selector for the grid container element").WithDefault(".grid-stack"),
				catalog.Object("options", "GridStack initialization options", gridOptionFields()...).WithDefault(map[string]any{}),
			),
			template: code("const grid = GridStack.init(%s, %s);", pretty("options"), quoted("selector")),
		},
		{
			name: "gridstack_add_widget", method: "addWidget", category: CategoryWidget,
			summary: "Add a new widget to the grid",
			params: params(
				catalog.Object("widget", "Widget configuration", widgetFields()...).
					WithGeometry(catalog.WidgetGeometry).AsRequired(),
				flag("triggerAddEvent", "Trigger 'added' event", true),
			),
			template: code("grid.addWidget(%s);", pretty("widget")),
		},
		{
			name: "gridstack_remove_widget", method: "removeWidget", category: CategoryWidget,
			summary: "Remove a widget from the grid",
			params: params(
				element("Widget selector or ID to remove"),
				flag("removeDOM", "Remove from DOM as well", true),
				flag("triggerEvent", "Trigger 'removed' event", true),
			),
			template: code("grid.removeWidget(%s, %s, %s);", quoted("el"), literal("removeDOM"), literal("triggerEvent")),
		},
		{
			name: "gridstack_update_widget", method: "updateWidget", category: CategoryWidget,
			summary: "Update widget properties",
			params: params(
				element("Widget selector or ID to update"),
				catalog.Object("opts", "Properties to update", updateFields()...).
					WithGeometry(catalog.WidgetGeometry).AsRequired(),
			),
			template: code("grid.update(%s, %s);", quoted("el"), pretty("opts")),
		},
		{
			name: "gridstack_move_widget", method: "moveWidget", category: CategoryWidget,
			summary: "Move a widget to a new position",
			params: params(
				element("Widget selector or ID to move"),
				catalog.Number("x", "New X position"),
				catalog.Number("y", "New Y position"),
			).WithGeometry(catalog.Geometry{X: "x", Y: "y"}),
			template: code("grid.move(%s, %s, %s);", quoted("el"), literal("x"), literal("y")),
		},
		{
			name: "gridstack_resize_widget", method: "resizeWidget", category: CategoryWidget,
			summary: "Resize a widget",
			params: params(
				element("Widget selector or ID to resize"),
				catalog.Number("width", "New width in columns"),
				catalog.Number("height", "New height in rows"),
			).WithGeometry(resizeGeometry),
			template: code("grid.resize(%s, %s, %s);", quoted("el"), literal("width"), literal("height")),
		},
		{
			name: "gridstack_compact", method: "compact", category: CategoryLayout,
			summary: "Compact the grid layout",
			params: params(
				layoutMode("Compact layout type"),
				flag("doSort", "Sort widgets before compacting", true),
			),
			template: code("grid.compact(%s, %s);", quoted("layout"), literal("doSort")),
		},
		{
			name: "gridstack_float", method: "float", category: CategoryLayout,
			summary: "Enable or disable floating widgets",
			params: params(
				catalog.Boolean("val", "Enable floating (true) or disable (false)"),
			),
			template: floatCode,
		},
		{
			name: "gridstack_column", method: "column", category: CategoryLayout,
			summary: "Change the number of columns",
			params: params(
				catalog.Union("column", "Number of columns or 'auto'", numberOrAuto...).AsRequired(),
				layoutMode("How to re-layout widgets"),
			),
			template: code("grid.column(%s, %s);", literal("column"), quoted("layout")),
		},
		{
			name: "gridstack_cell_height", method: "cellHeight", category: CategoryLayout,
			summary: "Update cell height",
			params: params(
				catalog.Union("val", "New cell height (px, 'auto', 'initial', CSS units)", numberOrString...),
				flag("update", "Update existing widgets", true),
			),
			template: cellHeightCode,
		},
		{
			name: "gridstack_margin", method: "margin", category: CategoryLayout,
			summary: "Update grid margin/gap",
			params: params(
				catalog.Union("value", "Margin value (px or CSS format)", numberOrString...).AsRequired(),
				catalog.String("unit", "CSS unit (px, em, rem, etc.)").WithDefault("px"),
			),
			template: marginCode,
		},
		{
			name: "gridstack_batch_update", method: "batchUpdate", category: CategoryLayout,
			summary: "Enable/disable batch update mode for efficiency",
			params: params(
				flag("flag", "Enable (true) or disable (false) batch mode", true),
			),
			template: code("grid.batchUpdate(%s);", literal("flag")),
		},
		{
			name: "gridstack_save", method: "save", category: CategorySerialization,
			summary: "Save grid layout to JSON",
			params: params(
				flag("saveContent", "Include widget content in save", true),
				flag("saveGridOpt", "Include grid options in save", false),
			),
			template: code("const layout = grid.save(%s, %s);", literal("saveContent"), literal("saveGridOpt")),
		},
		{
			name: "gridstack_load", method: "load", category: CategorySerialization,
			summary: "Load grid layout from JSON",
			params: params(
				catalog.Union("layout", "Layout data (JSON array or string)",
					catalog.Array("", "", catalog.Object("", "Widget configuration")),
					catalog.Of(catalog.KindString),
				).AsRequired(),
				flag("addAndRemove", "Add new widgets and remove missing ones", true),
			),
			template: loadCode,
		},
		{
			name: "gridstack_enable", method: "enable", category: CategoryCore,
			summary: "Enable or disable the grid",
			params: params(
				flag("doEnable", "Enable (true) or disable (false) the grid", true),
			),
			template: enableCode,
		},
		{
			name: "gridstack_destroy", method: "destroy", category: CategoryCore,
			summary: "Destroy the grid instance",
			params: params(
				flag("removeDOM", "Remove DOM elements", false),
			),
			template: code("grid.destroy(%s);", literal("removeDOM")),
		},
		{
			name: "gridstack_get_grid_items", method: "getGridItems", category: CategoryUtility,
			summary: "Get all grid items",
			params: params(
				flag("onlyVisible", "Only return visible items", false),
			),
			template: code("const items = grid.getGridItems(%s);", literal("onlyVisible")),
		},
		{
			name: "gridstack_set_responsive", method: "setResponsive", category: CategoryResponsive,
			summary: "Configure responsive breakpoints",
			params: params(
				catalog.Array("breakpoints", "Array of breakpoint configurations", catalog.Object("", "",
					catalog.Number("w", "Window width breakpoint").AsRequired(),
					catalog.Number("c", "Number of columns at this breakpoint").AsRequired(),
				)).WithCollection(breakpointRules).AsRequired(),
			),
			template: code("grid.setResponsive(%s);", pretty("breakpoints")),
		},
		{
			name: "gridstack_will_it_fit", method: "willItFit", category: CategoryUtility,
			summary: "Check if a widget will fit at specified position",
			params: params(
				catalog.Object("widget", "",
					catalog.Number("x", "X position").AsRequired(),
					catalog.Number("y", "Y position").AsRequired(),
					catalog.Number("w", "Width").AsRequired(),
					catalog.Number("h", "Height").AsRequired(),
					catalog.Union("id", "Widget ID to ignore in collision check", stringOrNumber...),
				).WithGeometry(catalog.WidgetGeometry).AsRequired(),
			),
			template: code("const willFit = grid.willItFit(%s);", pretty("widget")),
		},
		{
			name: "gridstack_is_area_empty", method: "isAreaEmpty", category: CategoryUtility,
			summary: "Check if an area is empty",
			params: params(
				catalog.Number("x", "X position").AsRequired(),
				catalog.Number("y", "Y position").AsRequired(),
				catalog.Number("w", "Width").AsRequired(),
				catalog.Number("h", "Height").AsRequired(),
			).WithGeometry(catalog.Geometry{X: "x", Y: "y", W: "w", H: "h"}),
			template: code("const isEmpty = grid.isAreaEmpty(%s, %s, %s, %s);", literal("x"), literal("y"), literal("w"), literal("h")),
		},
		{
			name: "gridstack_get_cell_height", method: "getCellHeight", category: CategoryUtility,
			summary:  "Get current cell height",
			params:   params(),
			template: fixed("const cellHeight = grid.getCellHeight();"),
		},
		{
			name: "gridstack_get_cell_from_pixel", method: "getCellFromPixel", category: CategoryUtility,
			summary: "Convert pixel coordinates to grid cell position",
			params: params(
				catalog.Object("position", "",
					catalog.Number("top", "Top pixel position").AsRequired(),
					catalog.Number("left", "Left pixel position").AsRequired(),
				).AsRequired(),
				flag("useOffset", "Use offset coordinates", false),
			),
			template: code("const cell = grid.getCellFromPixel(%s, %s);", compact("position"), literal("useOffset")),
		},
		{
			name: "gridstack_on", method: "addEventListener", category: CategoryEvents,
			summary: "Add event listener",
			params: params(
				eventName("Event name to listen for"),
				catalog.String("callback", "JavaScript callback function code").AsRequired(),
			),
			template: code("grid.on(%s, %s);", quoted("eventName"), verbatim("callback")),
		},
		{
			name: "gridstack_off", method: "removeEventListener", category: CategoryEvents,
			summary: "Remove event listener",
			params: params(
				eventName("Event name to remove listener for"),
			),
			template: code("grid.off(%s);", quoted("eventName")),
		},
		{
			name: "gridstack_make_widget", method: "makeWidget", category: CategoryWidget,
			summary: "Convert an existing DOM element into a grid widget",
			params: params(
				element("Element selector to convert"),
				catalog.Object("options", "Widget options", makeWidgetFields()...).
					WithGeometry(catalog.WidgetGeometry).WithDefault(map[string]any{}),
			),
			template: code("grid.makeWidget(%s, %s);", quoted("el"), pretty("options")),
		},
		{
			name: "gridstack_remove_all", method: "removeAll", category: CategoryWidget,
			summary: "Remove all widgets from the grid",
			params: params(
				flag("removeDOM", "Remove DOM elements", true),
			),
			template: code("grid.removeAll(%s);", literal("removeDOM")),
		},
		{
			name: "gridstack_get_margin", method: "getMargin", category: CategoryUtility,
			summary:  "Get current margin values",
			params:   params(),
			template: fixed("const margin = grid.getMargin();"),
		},
		{
			name: "gridstack_get_column", method: "getColumn", category: CategoryUtility,
			summary:  "Get current number of columns",
			params:   params(),
			template: fixed("const columns = grid.column();"),
		},
		{
			name: "gridstack_get_float", method: "getFloat", category: CategoryUtility,
			summary:  "Get current float state",
			params:   params(),
			template: fixed("const floatMode = grid.float();"),
		},
		{
			name: "gridstack_add_grid", method: "addGrid", category: CategoryCore,
			summary: "Create a new grid with options and children (static method)",
			params: params(
				catalog.String("parent", "Parent element selector").AsRequired(),
				catalog.Object("opt", "Grid options including children",
					catalog.Array("children", "Array of child widgets to load", catalog.Object("", "Child widget configuration")),
				).WithDefault(map[string]any{}),
			),
			template: code("const grid = GridStack.addGrid(%s, %s);", quoted("parent"), pretty("opt")),
		},
	}

	descs := make([]catalog.Descriptor, 0, len(ops))
	for _, o := range ops {
		t := texts[o.method]
		descs = append(descs, catalog.Descriptor{
			Name:        o.name,
			Summary:     o.summary,
			Method:      o.method,
			Params:      o.params,
			Template:    o.template,
			Description: t.description,
			Example:     t.example,
			Notes:       t.notes,
			Namespace:   Namespace,
			Version:     OperationVersion,
			Tags:        []string{o.category, Namespace},
		})
	}
	return descs
}

// Catalog returns the operation catalog.
func Catalog() (*catalog.Catalog, error) {
	return catalog.New(Operations()...)
}
