package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Error values for consistent error handling by callers.
var (
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrDuplicateName     = errors.New("duplicate operation name")
)

// Catalog is an ordered, immutable set of descriptors.
type Catalog struct {
	descs  []Descriptor
	byName map[string]int
}

// New builds a catalog from descs, keeping their order.
func New(descs ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		descs:  make([]Descriptor, 0, len(descs)),
		byName: make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byName[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}
		d.Params.Kind = KindObject
		c.byName[d.Name] = len(c.descs)
		c.descs = append(c.descs, d)
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(descs ...Descriptor) *Catalog {
	c, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns all descriptors in registration order.
func (c *Catalog) List() []Descriptor {
	return slices.Clone(c.descs)
}

// Find returns the descriptor registered under name.
func (c *Catalog) Find(name string) (Descriptor, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return c.descs[i], true
}

// Names returns operation names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.descs))
	for i, d := range c.descs {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	return len(c.descs)
}
