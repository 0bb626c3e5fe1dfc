package synth

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/gridstack-mcp/catalog"
)

// Result is one assembled artifact.
type Result struct {
	Operation  string
	Method     string
	Heading    string
	Language   string
	Parameters map[string]any
	Code       string

	Description string
	Example     string
	Notes       []string
}

// Engine assembles and formats results.
type Engine struct {
	// Heading prefixes every title, e.g. "GridStack".
	Heading string
	// Language tags the generated code and example blocks.
	Language string
}

// Assemble builds the result for desc. Empty description and example text
// are replaced by placeholders.
func (e Engine) Assemble(desc catalog.Descriptor, params map[string]any, code string) Result {
	method := desc.Method
	if method == "" {
		method = desc.Name
	}

	description := desc.Description
	if description == "" {
		description = strings.TrimSpace(e.Heading + " operation")
	}
	example := desc.Example
	if example == "" {
		example = fmt.Sprintf("// %s example", method)
	}

	return Result{
		Operation:   desc.Name,
		Method:      method,
		Heading:     e.Heading,
		Language:    e.language(),
		Parameters:  params,
		Code:        code,
		Description: description,
		Example:     example,
		Notes:       desc.Notes,
	}
}

// Render assembles and formats in one step.
func (e Engine) Render(desc catalog.Descriptor, params map[string]any, code string) (string, error) {
	return e.Assemble(desc, params, code).Format()
}

func (e Engine) language() string {
	if e.Language == "" {
		return "javascript"
	}
	return e.Language
}

// Title is the first line of the formatted artifact, without the leading
// hashes.
func (r Result) Title() string {
	title := r.Method
	if r.Heading != "" {
		title = r.Heading + " " + title
	}
	if r.Operation != "" && r.Operation != r.Method {
		title += " (`" + r.Operation + "`)"
	}
	return title
}

// Format renders r as markdown.
func (r Result) Format() (string, error) {
	lang := r.Language
	if lang == "" {
		lang = "javascript"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", r.Title(), r.Description)
	writeBlock(&b, "Generated Code", lang, r.Code)

	if len(r.Parameters) > 0 {
		params, err := JSON(r.Parameters)
		if err != nil {
			return "", fmt.Errorf("encode parameters: %w", err)
		}
		b.WriteString("\n\n")
		writeBlock(&b, "Parameters", "json", params)
	}

	if r.Example != "" {
		b.WriteString("\n\n")
		writeBlock(&b, "Example", lang, r.Example)
	}

	if len(r.Notes) > 0 {
		b.WriteString("\n\n### Notes:\n")
		for i, note := range r.Notes {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("- " + note)
		}
	}

	return b.String(), nil
}

func writeBlock(b *strings.Builder, section, lang, body string) {
	fmt.Fprintf(b, "### %s:\n```%s\n%s\n```", section, lang, body)
}
