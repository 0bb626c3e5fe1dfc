package catalog_test

import (
	"fmt"

	"github.com/jonwraymond/gridstack-mcp/catalog"
)

func Example() {
	c := catalog.MustNew(
		catalog.Descriptor{
			Name:    "grid_float",
			Summary: "Enable or disable floating widgets",
			Method:  "float",
			Params:  catalog.Object("", "", catalog.Boolean("val", "Enable floating")),
			Template: func(map[string]any) (string, error) {
				return "grid.float();", nil
			},
		},
		catalog.Descriptor{
			Name:    "grid_compact",
			Summary: "Compact the grid layout",
			Method:  "compact",
			Template: func(map[string]any) (string, error) {
				return "grid.compact();", nil
			},
		},
	)

	for _, d := range c.List() {
		fmt.Println(d.Name)
	}
	d, ok := c.Find("grid_compact")
	fmt.Println(ok, d.Method)
	// Output:
	// grid_float
	// grid_compact
	// true compact
}
