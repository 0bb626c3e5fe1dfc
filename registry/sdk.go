package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewSDKServer exposes r through the official go-sdk server. Tools and
// resources are registered in catalog order.
func NewSDKServer(r *Registry) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    r.config.ServerInfo.Name,
		Version: r.config.ServerInfo.Version,
	}, nil)

	for i := range r.tools {
		tool := toMCPTool(r.tools[i])
		srv.AddTool(tool, r.sdkToolHandler(tool.Name))
	}
	for _, d := range r.ListResources() {
		srv.AddResource(&mcp.Resource{
			URI:         d.URI,
			Name:        d.Name,
			Description: d.Description,
			MIMEType:    d.MIMEType,
		}, r.sdkResourceHandler)
	}
	return srv
}

// ServeSDK runs the go-sdk server over stdio until ctx is done or the
// client disconnects.
func ServeSDK(ctx context.Context, r *Registry) error {
	return NewSDKServer(r).Run(ctx, &mcp.StdioTransport{})
}

func (r *Registry) sdkToolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if raw := req.Params.Arguments; len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				err = fmt.Errorf("%w: %v", ErrInvalidArguments, err)
				return textResult(fmt.Sprintf("Error executing %s: %v", name, err), true), nil
			}
		}
		text, err := r.Execute(ctx, name, args)
		if err != nil {
			return textResult(fmt.Sprintf("Error executing %s: %v", name, err), true), nil
		}
		return textResult(text, false), nil
	}
}

func (r *Registry) sdkResourceHandler(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	content, err := r.ReadResource(ctx, uri)
	if errors.Is(err, ErrResourceNotFound) {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      content.URI,
			MIMEType: content.MIMEType,
			Text:     content.Text,
		}},
	}, nil
}
