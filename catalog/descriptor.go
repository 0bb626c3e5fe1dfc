package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TemplateFunc renders the instruction text for normalized parameters.
type TemplateFunc func(params map[string]any) (string, error)

// Descriptor is the static definition of one operation.
type Descriptor struct {
	// Name is the unique key callers invoke.
	Name string
	// Summary is the one-line description shown when operations are listed.
	Summary string
	// Method labels the rendered artifact, e.g. "addWidget".
	Method string
	// Params is the root of the parameter schema and is always an object.
	Params Field
	// Template produces the generated instruction text.
	Template TemplateFunc

	// Description, Example and Notes are rendered with every result.
	Description string
	Example     string
	Notes       []string

	Namespace string
	Version   string
	Tags      []string
}

// InputSchema returns the parameter schema as JSON Schema.
func (d Descriptor) InputSchema() map[string]any {
	root := d.Params
	root.Name = ""
	root.Kind = KindObject
	return root.JSONSchema()
}

// Tool converts d into a validated toolfoundation tool.
func (d Descriptor) Tool() (model.Tool, error) {
	tool := model.Tool{
		Tool: mcp.Tool{
			Name:        d.Name,
			Description: d.Summary,
			InputSchema: d.InputSchema(),
		},
		Namespace: d.Namespace,
		Version:   d.Version,
		Tags:      model.NormalizeTags(d.Tags),
	}
	if err := tool.Validate(); err != nil {
		return model.Tool{}, fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, d.Name, err)
	}
	return tool, nil
}

// Fingerprint is a stable hash of everything that affects rendered output
// apart from the template code itself: name, schema (defaults included)
// and text.
func (d Descriptor) Fingerprint() string {
	h := sha256.New()

	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	write(d.Name)
	write(d.Method)
	write(d.Summary)
	schema, err := json.Marshal(d.InputSchema())
	if err != nil {
		// Defaults that cannot be encoded still need a distinct hash.
		schema = fmt.Appendf(nil, "%#v", d.Params)
	}
	write(string(schema))
	write(d.Description)
	write(d.Example)
	write(strings.Join(d.Notes, "\x01"))

	return hex.EncodeToString(h.Sum(nil))
}

func (d Descriptor) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDescriptor)
	}
	if d.Template == nil {
		return fmt.Errorf("%w: %s: missing template", ErrInvalidDescriptor, d.Name)
	}
	if d.Params.Kind != "" && d.Params.Kind != KindObject {
		return fmt.Errorf("%w: %s: parameters must be an object", ErrInvalidDescriptor, d.Name)
	}
	return nil
}
