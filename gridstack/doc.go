// Package gridstack declares the GridStack.js command surface: thirty
// gridstack_* operations with their parameter schemas and code templates,
// and the gridstack:// documents served alongside them.
//
// Operations are plain catalog descriptors. Nothing here executes
// JavaScript; templates only emit the code a caller would run in a page
// that loads GridStack.
//
// Use Catalog to build the operation catalog and ResourceCatalog to build
// the matching documents:
//
//	cat, err := gridstack.Catalog()
//	if err != nil {
//		return err
//	}
//	docs, err := gridstack.ResourceCatalog(cat)
package gridstack
