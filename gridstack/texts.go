package gridstack

// text that accompanies every rendered artifact of one method.
type methodText struct {
	description string
	example     string
	notes       []string
}

var texts = map[string]methodText{
	"init": {
		description: "Initialize a new GridStack instance with the specified options",
		example: `// Initialize with basic options
const grid = GridStack.init({
  column: 12,
  cellHeight: 'auto',
  margin: 10,
  float: false
});`,
		notes: []string{
			"Grid container must have 'grid-stack' class",
			"Include GridStack CSS and JS files",
			"Options are merged with defaults",
		},
	},
	"addWidget": {
		description: "Add a new widget to the grid at the specified position",
		example: `// Add a widget with content
grid.addWidget({
  x: 0, y: 0, w: 3, h: 2,
  content: '<div>My Widget</div>',
  id: 'widget1'
});`,
		notes: []string{
			"Widget will be auto-positioned if x,y not specified",
			"Triggers 'added' event by default",
			"Returns the created DOM element",
		},
	},
	"removeWidget": {
		description: "Remove a widget from the grid",
		example: `// Remove widget by selector
grid.removeWidget('#widget1');`,
		notes: []string{
			"Can accept element, selector, or GridStackNode",
			"Set removeDOM=false to keep in DOM",
			"Triggers 'removed' event by default",
		},
	},
	"updateWidget": {
		description: "Update widget properties (position, size, constraints)",
		example: `// Update widget properties
grid.update('#widget1', {
  w: 4, h: 3,
  locked: true
});`,
	},
	"moveWidget": {
		description: "Move a widget to a new position",
		example: `// Move widget to new position
grid.move('#widget1', 2, 1);`,
	},
	"resizeWidget": {
		description: "Resize a widget to new dimensions",
		example: `// Resize widget
grid.resize('#widget1', 4, 3);`,
	},
	"compact": {description: "Compact the grid layout to remove gaps"},
	"float": {
		description: "Enable or disable floating widget mode",
		notes: []string{
			"Float mode allows widgets to move up to fill gaps",
			"Disable for more predictable layouts",
			"Can be toggled at runtime",
		},
	},
	"column": {
		description: "Change the number of columns in the grid",
		notes: []string{
			"Changing columns re-layouts existing widgets",
			"CSS must support the new column count",
			"Use 'auto' for nested grids",
		},
	},
	"cellHeight": {description: "Update the height of grid cells"},
	"margin":     {description: "Update the margin/gap between grid items"},
	"batchUpdate": {
		description: "Enable batch update mode for efficient multiple operations",
		notes: []string{
			"Use before multiple operations for efficiency",
			"Call with false to end batch mode",
			"Only one 'change' event fired at end",
		},
	},
	"save": {
		description: "Serialize the current grid layout to JSON",
		example: `// Save layout to JSON
const layout = grid.save(true);
localStorage.setItem('layout', JSON.stringify(layout));`,
		notes: []string{
			"Returns array of widget configurations",
			"saveContent=true includes HTML content",
			"saveGridOpt=true includes grid options",
		},
	},
	"load": {
		description: "Load a grid layout from JSON data",
		example: `// Load layout from JSON
const layout = JSON.parse(localStorage.getItem('layout'));
grid.load(layout);`,
		notes: []string{
			"Accepts array of widget configs or JSON string",
			"addAndRemove=true syncs with current widgets",
			"Existing widgets not in layout are removed",
		},
	},
	"enable":              {description: "Enable or disable grid interactions"},
	"destroy":             {description: "Destroy the grid instance and clean up"},
	"getGridItems":        {description: "Get all grid items (widgets)"},
	"setResponsive":       {description: "Configure responsive breakpoints"},
	"willItFit":           {description: "Check if a widget will fit at the specified position"},
	"isAreaEmpty":         {description: "Check if a grid area is empty"},
	"getCellHeight":       {description: "Get the current cell height"},
	"getCellFromPixel":    {description: "Convert pixel coordinates to grid cell position"},
	"addEventListener":    {description: "Add an event listener for grid events"},
	"removeEventListener": {description: "Remove an event listener"},
	"makeWidget":          {description: "Convert an existing DOM element into a grid widget"},
	"removeAll":           {description: "Remove all widgets from the grid"},
	"getMargin":           {description: "Get current margin values"},
	"getColumn":           {description: "Get current number of columns"},
	"getFloat":            {description: "Get current float mode state"},
	"addGrid":             {description: "Create a new grid with options and children (static method)"},
}
