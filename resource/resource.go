package resource

import (
	"errors"
	"fmt"
	"strings"
)

// Error values for consistent error handling by callers.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidEntry = errors.New("invalid resource entry")
	ErrDuplicateURI = errors.New("duplicate resource uri")
)

// Descriptor describes one static document.
type Descriptor struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
}

// BodyFunc composes a document body.
type BodyFunc func() (string, error)

// Entry pairs a descriptor with the function that builds its body.
type Entry struct {
	Descriptor
	Body BodyFunc
}

// Static returns a BodyFunc for fixed text.
func Static(text string) BodyFunc {
	return func() (string, error) { return text, nil }
}

// Content is the result of a read.
type Content struct {
	URI      string
	MIMEType string
	Text     string
}

// Catalog is an ordered, immutable set of entries.
type Catalog struct {
	entries []Entry
	byURI   map[string]int
}

// New builds a catalog, keeping the order of entries.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byURI:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.URI) == "" || e.Body == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntry, e.URI)
		}
		if _, ok := c.byURI[e.URI]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateURI, e.URI)
		}
		c.byURI[e.URI] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// List returns descriptors in registration order.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Descriptor
	}
	return out
}

// Lookup returns the descriptor for uri without composing its body.
func (c *Catalog) Lookup(uri string) (Descriptor, bool) {
	i, ok := c.byURI[uri]
	if !ok {
		return Descriptor{}, false
	}
	return c.entries[i].Descriptor, true
}

// URIs returns every registered URI in order.
func (c *Catalog) URIs() []string {
	uris := make([]string, len(c.entries))
	for i, e := range c.entries {
		uris[i] = e.URI
	}
	return uris
}

// Read composes the body registered for uri.
func (c *Catalog) Read(uri string) (Content, error) {
	i, ok := c.byURI[uri]
	if !ok {
		return Content{}, fmt.Errorf("%w: %s", ErrNotFound, uri)
	}
	e := c.entries[i]
	text, err := e.Body()
	if err != nil {
		return Content{}, fmt.Errorf("compose %s: %w", uri, err)
	}
	return Content{URI: e.URI, MIMEType: e.MIMEType, Text: text}, nil
}
