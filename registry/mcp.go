package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether req expects no response.
func (req MCPRequest) IsNotification() bool {
	return req.ID == nil
}

// MCPResponse represents an MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func result(id, v any) MCPResponse {
	return MCPResponse{JSONRPC: "2.0", ID: id, Result: v}
}

func failure(id any, code int, message string, data any) MCPResponse {
	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message, Data: data},
	}
}

// HandleRequest processes an MCP request and returns a response. The
// response to a notification carries no result and should not be sent.
func (r *Registry) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	if req.JSONRPC != "2.0" || req.Method == "" {
		return failure(req.ID, ErrCodeInvalidRequest, ErrInvalidRequest.Error(), nil)
	}

	switch req.Method {
	case "initialize":
		return r.handleInitialize(req.ID)
	case "notifications/initialized", "notifications/cancelled":
		return MCPResponse{JSONRPC: "2.0", ID: req.ID}
	case "ping":
		return result(req.ID, map[string]any{})
	case "tools/list":
		return r.handleToolsList(req.ID)
	case "tools/call":
		return r.handleToolsCall(ctx, req.ID, req.Params)
	case "resources/list":
		return r.handleResourcesList(req.ID)
	case "resources/read":
		return r.handleResourcesRead(ctx, req.ID, req.Params)
	default:
		return failure(req.ID, ErrCodeMethodNotFound, fmt.Sprintf("method %s not found", req.Method), nil)
	}
}

func (r *Registry) handleInitialize(id any) MCPResponse {
	capabilities := map[string]any{
		"tools": map[string]any{},
	}
	if r.config.Resources != nil {
		capabilities["resources"] = map[string]any{}
	}

	return result(id, map[string]any{
		"protocolVersion": model.MCPVersion,
		"capabilities":    capabilities,
		"serverInfo": map[string]any{
			"name":    r.config.ServerInfo.Name,
			"version": r.config.ServerInfo.Version,
		},
	})
}

func (r *Registry) handleToolsList(id any) MCPResponse {
	tools := make([]*mcp.Tool, 0, len(r.tools))
	for i := range r.tools {
		tools = append(tools, toMCPTool(r.tools[i]))
	}
	return result(id, &mcp.ListToolsResult{Tools: tools})
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// handleToolsCall never fails at the protocol level once the parameters
// decode: operation errors come back as text with isError set.
func (r *Registry) handleToolsCall(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var callParams toolsCallParams
	if err := decodeParams(params, &callParams); err != nil {
		return failure(id, ErrCodeInvalidParams, err.Error(), nil)
	}
	if callParams.Name == "" {
		return failure(id, ErrCodeInvalidParams, "tool name is required", nil)
	}

	text, err := r.Execute(ctx, callParams.Name, callParams.Arguments)
	if err != nil {
		return result(id, textResult(fmt.Sprintf("Error executing %s: %v", callParams.Name, err), true))
	}
	return result(id, textResult(text, false))
}

func (r *Registry) handleResourcesList(id any) MCPResponse {
	descs := r.ListResources()
	resources := make([]*mcp.Resource, 0, len(descs))
	for _, d := range descs {
		resources = append(resources, &mcp.Resource{
			URI:         d.URI,
			Name:        d.Name,
			Description: d.Description,
			MIMEType:    d.MIMEType,
		})
	}
	return result(id, &mcp.ListResourcesResult{Resources: resources})
}

type resourcesReadParams struct {
	URI string `json:"uri"`
}

func (r *Registry) handleResourcesRead(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var readParams resourcesReadParams
	if err := decodeParams(params, &readParams); err != nil {
		return failure(id, ErrCodeInvalidParams, err.Error(), nil)
	}
	if readParams.URI == "" {
		return failure(id, ErrCodeInvalidParams, "resource uri is required", nil)
	}

	content, err := r.ReadResource(ctx, readParams.URI)
	if err != nil {
		code := ErrCodeInternal
		var data any
		if errors.Is(err, ErrResourceNotFound) {
			code = ErrCodeResourceNotFound
			data = map[string]any{"uri": readParams.URI}
		}
		return failure(id, code, err.Error(), data)
	}

	return result(id, &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      content.URI,
			MIMEType: content.MIMEType,
			Text:     content.Text,
		}},
	})
}

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return fmt.Errorf("%w: missing params", ErrInvalidRequest)
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}

func toMCPTool(tool model.Tool) *mcp.Tool {
	t := tool.Tool
	return &t
}
