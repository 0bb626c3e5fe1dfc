package gridstack

import (
	"slices"
	"strings"
	"testing"

	"github.com/jonwraymond/gridstack-mcp/catalog"
	"github.com/jonwraymond/gridstack-mcp/validate"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	return cat
}

// render applies top-level defaults, validates and runs the template.
func render(t *testing.T, name string, args map[string]any) (string, validate.Outcome) {
	t.Helper()
	desc, ok := mustCatalog(t).Find(name)
	if !ok {
		t.Fatalf("operation %q not found", name)
	}
	params := map[string]any{}
	for _, f := range desc.Params.Fields {
		if f.Default != nil {
			params[f.Name] = f.Default
		}
	}
	for k, v := range args {
		params[k] = v
	}
	outcome := validate.Validate(desc, params)
	if !outcome.Valid {
		return "", outcome
	}
	code, err := desc.Template(params)
	if err != nil {
		t.Fatalf("%s template error = %v", name, err)
	}
	return code, outcome
}

func TestOperations_Order(t *testing.T) {
	want := []string{
		"gridstack_init", "gridstack_add_widget", "gridstack_remove_widget",
		"gridstack_update_widget", "gridstack_move_widget", "gridstack_resize_widget",
		"gridstack_compact", "gridstack_float", "gridstack_column", "gridstack_cell_height",
		"gridstack_margin", "gridstack_batch_update", "gridstack_save", "gridstack_load",
		"gridstack_enable", "gridstack_destroy", "gridstack_get_grid_items",
		"gridstack_set_responsive", "gridstack_will_it_fit", "gridstack_is_area_empty",
		"gridstack_get_cell_height", "gridstack_get_cell_from_pixel", "gridstack_on",
		"gridstack_off", "gridstack_make_widget", "gridstack_remove_all",
		"gridstack_get_margin", "gridstack_get_column", "gridstack_get_float",
		"gridstack_add_grid",
	}
	if got := mustCatalog(t).Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestOperations_AreValidTools(t *testing.T) {
	for _, d := range Operations() {
		tool, err := d.Tool()
		if err != nil {
			t.Errorf("%s: Tool() error = %v", d.Name, err)
			continue
		}
		if tool.Namespace != Namespace {
			t.Errorf("%s: namespace = %q", d.Name, tool.Namespace)
		}
		if d.Description == "" {
			t.Errorf("%s: missing description", d.Name)
		}
		if len(d.Tags) == 0 {
			t.Errorf("%s: missing category tag", d.Name)
		}
	}
}

func TestOperations_Templates(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"gridstack_init", nil, "const grid = GridStack.init({}, '.grid-stack');"},
		{"gridstack_init", map[string]any{"options": map[string]any{"column": 6.0}},
			"const grid = GridStack.init({\n  \"column\": 6\n}, '.grid-stack');"},
		{"gridstack_add_widget", map[string]any{"widget": map[string]any{"x": 0.0, "w": 2.0}},
			"grid.addWidget({\n  \"w\": 2,\n  \"x\": 0\n});"},
		{"gridstack_remove_widget", map[string]any{"el": "#w1"}, "grid.removeWidget('#w1', true, true);"},
		{"gridstack_update_widget", map[string]any{"el": "#w1", "opts": map[string]any{"locked": true}},
			"grid.update('#w1', {\n  \"locked\": true\n});"},
		{"gridstack_move_widget", map[string]any{"el": "#w1", "x": 2.0, "y": 1.0}, "grid.move('#w1', 2, 1);"},
		{"gridstack_move_widget", map[string]any{"el": "#w1"}, "grid.move('#w1', undefined, undefined);"},
		{"gridstack_resize_widget", map[string]any{"el": "#w1", "width": 4.0, "height": 3.0}, "grid.resize('#w1', 4, 3);"},
		{"gridstack_compact", nil, "grid.compact('moveScale', true);"},
		{"gridstack_compact", map[string]any{"layout": "list", "doSort": false}, "grid.compact('list', false);"},
		{"gridstack_float", nil, "grid.float();"},
		{"gridstack_float", map[string]any{"val": true}, "grid.float(true);"},
		{"gridstack_column", map[string]any{"column": 6.0}, "grid.column(6, 'moveScale');"},
		{"gridstack_column", map[string]any{"column": "auto", "layout": "none"}, "grid.column('auto', 'none');"},
		{"gridstack_cell_height", nil, "grid.cellHeight();"},
		{"gridstack_cell_height", map[string]any{"val": "auto"}, "grid.cellHeight('auto', true);"},
		{"gridstack_margin", map[string]any{"value": 10.0}, "grid.margin(10);"},
		{"gridstack_margin", map[string]any{"value": 2.0, "unit": "em"}, "grid.margin('2em');"},
		{"gridstack_margin", map[string]any{"value": "5px 10px"}, "grid.margin('5px 10px');"},
		{"gridstack_batch_update", nil, "grid.batchUpdate(true);"},
		{"gridstack_save", nil, "const layout = grid.save(true, false);"},
		{"gridstack_load", map[string]any{"layout": "savedLayout"}, "grid.load(savedLayout, true);"},
		{"gridstack_load", map[string]any{"layout": []any{map[string]any{"id": "a"}}, "addAndRemove": false},
			"grid.load([\n  {\n    \"id\": \"a\"\n  }\n], false);"},
		{"gridstack_enable", nil, "grid.enable();"},
		{"gridstack_enable", map[string]any{"doEnable": false}, "grid.disable();"},
		{"gridstack_destroy", nil, "grid.destroy(false);"},
		{"gridstack_get_grid_items", nil, "const items = grid.getGridItems(false);"},
		{"gridstack_set_responsive", map[string]any{"breakpoints": []any{map[string]any{"w": 768.0, "c": 1.0}}},
			"grid.setResponsive([\n  {\n    \"c\": 1,\n    \"w\": 768\n  }\n]);"},
		{"gridstack_will_it_fit", map[string]any{"widget": map[string]any{"x": 0.0, "y": 0.0, "w": 1.0, "h": 1.0}},
			"const willFit = grid.willItFit({\n  \"h\": 1,\n  \"w\": 1,\n  \"x\": 0,\n  \"y\": 0\n});"},
		{"gridstack_is_area_empty", map[string]any{"x": 0.0, "y": 1.0, "w": 2.0, "h": 3.0},
			"const isEmpty = grid.isAreaEmpty(0, 1, 2, 3);"},
		{"gridstack_get_cell_height", nil, "const cellHeight = grid.getCellHeight();"},
		{"gridstack_get_cell_from_pixel", map[string]any{"position": map[string]any{"top": 10.0, "left": 20.0}},
			`const cell = grid.getCellFromPixel({"left":20,"top":10}, false);`},
		{"gridstack_on", map[string]any{"eventName": "change", "callback": "(e, items) => {}"},
			"grid.on('change', (e, items) => {});"},
		{"gridstack_off", map[string]any{"eventName": "drag"}, "grid.off('drag');"},
		{"gridstack_make_widget", map[string]any{"el": "#item"}, "grid.makeWidget('#item', {});"},
		{"gridstack_remove_all", nil, "grid.removeAll(true);"},
		{"gridstack_get_margin", nil, "const margin = grid.getMargin();"},
		{"gridstack_get_column", nil, "const columns = grid.column();"},
		{"gridstack_get_float", nil, "const floatMode = grid.float();"},
		{"gridstack_add_grid", map[string]any{"parent": "#root"}, "const grid = GridStack.addGrid('#root', {});"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, outcome := render(t, tc.name, tc.args)
			if !outcome.Valid {
				t.Fatalf("violations = %v", outcome.Violations)
			}
			if got != tc.want {
				t.Errorf("code =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestOperations_QuotesSelectors(t *testing.T) {
	got, _ := render(t, "gridstack_remove_widget", map[string]any{"el": "[data-id='x']"})
	if want := `grid.removeWidget('[data-id=\'x\']', true, true);`; got != want {
		t.Fatalf("code = %s, want %s", got, want)
	}
}

func TestOperations_Violations(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{"gridstack_add_widget", map[string]any{"widget": map[string]any{"minW": 5.0, "maxW": 3.0}},
			[]string{"minW cannot be greater than maxW"}},
		{"gridstack_add_widget", nil, []string{"widget is required"}},
		{"gridstack_add_widget", map[string]any{"widget": map[string]any{"x": -1.0, "w": 0.0}},
			[]string{"x position must be a non-negative integer", "width must be a positive integer"}},
		{"gridstack_update_widget", map[string]any{"el": "#a", "opts": map[string]any{"w": 2.0, "minW": 3.0}},
			[]string{"width cannot be less than minW"}},
		{"gridstack_move_widget", map[string]any{"el": "#a", "x": 1.5}, []string{"x position must be a non-negative integer"}},
		{"gridstack_resize_widget", map[string]any{"el": "#a", "height": 0.0}, []string{"height must be a positive integer"}},
		{"gridstack_is_area_empty", map[string]any{"x": 0.0, "y": 0.0, "w": 1.0}, []string{"h is required"}},
		{"gridstack_compact", map[string]any{"layout": "sideways"}, nil},
		{"gridstack_set_responsive", map[string]any{"breakpoints": []any{
			map[string]any{"w": 768.0, "c": 1.0},
			map[string]any{"w": 768.0, "c": 6.0},
		}}, []string{"Breakpoints cannot have duplicate widths"}},
		{"gridstack_set_responsive", map[string]any{"breakpoints": []any{"bad", map[string]any{"w": 0.0, "c": 1.5}}},
			[]string{
				"Breakpoint at index 0 must be an object",
				"Breakpoint at index 1 must have a positive width (w)",
				"Breakpoint at index 1 must have a positive integer columns (c)",
			}},
		{"gridstack_on", map[string]any{"eventName": "click", "callback": "() => {}"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, outcome := render(t, tc.name, tc.args)
			if outcome.Valid {
				t.Fatalf("expected violations")
			}
			if tc.want != nil && !slices.Equal(outcome.Violations, tc.want) {
				t.Errorf("violations = %q, want %q", outcome.Violations, tc.want)
			}
		})
	}
}

func TestOperations_EnumViolationNamesField(t *testing.T) {
	_, outcome := render(t, "gridstack_compact", map[string]any{"layout": "sideways"})
	if len(outcome.Violations) != 1 || !strings.HasPrefix(outcome.Violations[0], "layout must be one of") {
		t.Fatalf("violations = %q", outcome.Violations)
	}
}

func TestOperations_DefaultsMatchExplicit(t *testing.T) {
	omitted, _ := render(t, "gridstack_compact", map[string]any{"layout": "move"})
	explicit, _ := render(t, "gridstack_compact", map[string]any{"layout": "move", "doSort": true})
	if omitted != explicit {
		t.Fatalf("omitted = %q, explicit = %q", omitted, explicit)
	}
}
