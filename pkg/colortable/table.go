// Package colortable holds the colors of a loaded colorscheme together
// with the composite colors derived from them while rendering blueprints.
package colortable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/color"
)

// FieldSeparator separates the fields of a composite color expression.
// It never appears in a plain color name.
const FieldSeparator = ":"

// MaxMixAmount is the largest accepted mix amount (a percentage)
const MaxMixAmount = 100

// Table maps color names to colors. Composite colors are added on demand
// and reused for the lifetime of the table. A Table is not safe for
// concurrent use.
type Table struct {
	colors map[string]color.RGB
}

// New creates an empty table
func New() *Table {
	return &Table{colors: make(map[string]color.RGB)}
}

// FromMap creates a table holding a copy of colors
func FromMap(colors map[string]color.RGB) *Table {
	t := &Table{colors: make(map[string]color.RGB, len(colors))}
	for name, c := range colors {
		t.colors[name] = c
	}
	return t
}

// Set stores a base color
func (t *Table) Set(name string, c color.RGB) {
	t.colors[name] = c
}

// Get looks up a color by its exact name
func (t *Table) Get(name string) (color.RGB, bool) {
	c, ok := t.colors[name]
	return c, ok
}

// CompositeKey returns the key a composite color is cached under
func CompositeKey(color1 string, amount uint8, color2 string) string {
	return color1 + FieldSeparator + strconv.Itoa(int(amount)) + FieldSeparator + color2
}

// GetComposite returns color1 mixed with color2, color1 weighted by
// amount percent. The result is computed once and cached; lookups that
// fail (unknown operand, amount above MaxMixAmount) are not cached.
func (t *Table) GetComposite(color1 string, amount uint8, color2 string) (color.RGB, bool) {
	key := CompositeKey(color1, amount, color2)
	if c, ok := t.colors[key]; ok {
		return c, true
	}

	if amount > MaxMixAmount {
		return color.RGB{}, false
	}

	c1, ok := t.colors[color1]
	if !ok {
		return color.RGB{}, false
	}
	c2, ok := t.colors[color2]
	if !ok {
		return color.RGB{}, false
	}

	mixed := c1.Mix(amount, c2)
	t.colors[key] = mixed
	return mixed, true
}

// Len returns the number of entries, composites included
func (t *Table) Len() int {
	return len(t.colors)
}

// Names returns every key in sorted order, composites included
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Base returns a copy of the plain (non-composite) entries
func (t *Table) Base() map[string]color.RGB {
	base := make(map[string]color.RGB, len(t.colors))
	for name, c := range t.colors {
		if strings.Contains(name, FieldSeparator) {
			continue
		}
		base[name] = c
	}
	return base
}
