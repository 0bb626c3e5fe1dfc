// Package registry dispatches catalog operations and serves them over MCP.
//
// A Registry resolves an operation by name, merges its defaults, validates
// the arguments and renders the result through a synth.Engine. Invoke never
// fails: errors come back as "Error executing <name>: <message>" text.
// Static documents are read through ReadResource, which is the one call
// that reports a missing entry as an error.
//
// Features:
//   - Ordered operation listing as MCP tools
//   - BM25 operation search
//   - Optional result cache keyed by operation, parameters and descriptor
//   - MCP protocol handlers (initialize, ping, tools/*, resources/*)
//   - Transports: newline-delimited stdio, HTTP POST, and the go-sdk server
//
// Example usage:
//
//	cat, _ := gridstack.Catalog()
//	docs, _ := gridstack.ResourceCatalog(cat)
//	reg, err := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{Name: "gridstack-mcp-server", Version: "1.0.0"},
//	    Catalog:    cat,
//	    Resources:  docs,
//	    Engine:     synth.Engine{Heading: "GridStack"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer reg.Close()
//
//	registry.ServeStdio(ctx, reg)
package registry
