package gridstack

import (
	_ "embed"
	"strings"

	"github.com/jonwraymond/gridstack-mcp/catalog"
	"github.com/jonwraymond/gridstack-mcp/resource"
)

// Resource URIs.
const (
	URIDocumentation     = "gridstack://documentation/api"
	URIBasicExample      = "gridstack://examples/basic"
	URIResponsiveExample = "gridstack://examples/responsive"
	URIReactExample      = "gridstack://examples/react"
	URIVueExample        = "gridstack://examples/vue"
	URIAngularExample    = "gridstack://examples/angular"
	URIDashboard         = "gridstack://templates/dashboard"
	URICustomCSS         = "gridstack://css/custom"
	URITailwindCSS       = "gridstack://css/tailwind"
	URIModulesCSS        = "gridstack://css/modules"
	URITailwindDashboard = "gridstack://examples/tailwind-dashboard"
)

var (
	//go:embed content/responsive.html
	responsiveHTML string
	//go:embed content/react.jsx
	reactSource string
	//go:embed content/vue.vue
	vueSource string
	//go:embed content/angular.ts
	angularSource string
	//go:embed content/dashboard.html
	dashboardHTML string
	//go:embed content/tailwind.css
	tailwindCSS string
	//go:embed content/modules.css
	modulesCSS string
	//go:embed content/tailwind-dashboard.html
	tailwindDashboardHTML string
)

// BasicPage is the layout served as the basic example.
var BasicPage = PageOptions{
	Column:     12,
	CellHeight: "auto",
	Margin:     10,
	Children: []Widget{
		{ID: "widget1", X: 0, Y: 0, W: 3, H: 2, Content: "Widget 1"},
		{ID: "widget2", X: 3, Y: 0, W: 3, H: 2, Content: "Widget 2"},
		{ID: "widget3", X: 0, Y: 2, W: 6, H: 3, Content: "Large Widget"},
	},
}

// CustomStyle is the stylesheet served as the custom CSS example.
var CustomStyle = StyleOptions{
	CellHeight: 80,
	Margin:     15,
	Columns:    12,
	Colors: &Colors{
		Background: "#ffffff",
		Border:     "#e1e5e9",
		Hover:      "#f8f9fa",
	},
}

// Resources returns the static documents in listing order. The API
// documentation is composed from cat on every read.
func Resources(cat *catalog.Catalog) []resource.Entry {
	return []resource.Entry{
		{
			Descriptor: resource.Descriptor{
				URI:         URIDocumentation,
				Name:        "GridStack API Documentation",
				Description: "Complete GridStack API reference",
				MIMEType:    "text/markdown",
			},
			Body: func() (string, error) { return APIDocumentation(cat), nil },
		},
		{
			Descriptor: resource.Descriptor{
				URI:         URIBasicExample,
				Name:        "Basic GridStack Example",
				Description: "Simple GridStack implementation",
				MIMEType:    "text/html",
			},
			Body: func() (string, error) { return HTMLPage(BasicPage) },
		},
		static(URIResponsiveExample, "Responsive GridStack Example", "Responsive grid with breakpoints", "text/html", responsiveHTML),
		static(URIReactExample, "React Integration", "GridStack with React component", "text/javascript", reactSource),
		static(URIVueExample, "Vue Integration", "GridStack with Vue component", "text/javascript", vueSource),
		static(URIAngularExample, "Angular Integration", "GridStack with Angular component", "text/javascript", angularSource),
		static(URIDashboard, "Dashboard Template", "Complete dashboard layout template", "text/html", dashboardHTML),
		{
			Descriptor: resource.Descriptor{
				URI:         URICustomCSS,
				Name:        "Custom CSS Styles",
				Description: "Custom GridStack styling examples",
				MIMEType:    "text/css",
			},
			Body: func() (string, error) { return CustomCSS(CustomStyle), nil },
		},
		static(URITailwindCSS, "Tailwind CSS Integration", "Complete Tailwind CSS setup for GridStack", "text/css", tailwindCSS),
		static(URIModulesCSS, "CSS Modules Examples", "Component-scoped CSS modules for GridStack", "text/css", modulesCSS),
		static(URITailwindDashboard, "Tailwind Dashboard Example", "Modern dashboard using Tailwind CSS", "text/html", tailwindDashboardHTML),
	}
}

func static(uri, name, description, mimeType, body string) resource.Entry {
	return resource.Entry{
		Descriptor: resource.Descriptor{URI: uri, Name: name, Description: description, MIMEType: mimeType},
		Body:       resource.Static(strings.TrimSuffix(body, "\n")),
	}
}

// ResourceCatalog builds the resource catalog for cat.
func ResourceCatalog(cat *catalog.Catalog) (*resource.Catalog, error) {
	return resource.New(Resources(cat)...)
}
