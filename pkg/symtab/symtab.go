// Package symtab holds the variable namespace of one xpres run.
package symtab

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by Table, wrapped with the offending name.
var (
	ErrRedefined = errors.New("redefined variable")
	ErrUndefined = errors.New("undefined variable")
)

// Cell is the mutable storage behind one declared variable.
type Cell struct {
	Name  string
	Value int64
}

// Table maps variable names to cells. The zero value is not usable; call New.
type Table struct {
	cells map[string]*Cell
}

// New creates an empty table.
func New() *Table {
	return &Table{cells: make(map[string]*Cell)}
}

// Declare inserts name with value 0. Names are never overwritten.
func (t *Table) Declare(name string) (*Cell, error) {
	if _, ok := t.cells[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrRedefined, name)
	}
	c := &Cell{Name: name}
	t.cells[name] = c
	return c, nil
}

// Lookup returns the shared cell for name.
func (t *Table) Lookup(name string) (*Cell, error) {
	c, ok := t.cells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	return c, nil
}

// Len returns the number of declared variables.
func (t *Table) Len() int {
	return len(t.cells)
}

// Names returns the declared names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.cells))
	for name := range t.cells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current values.
func (t *Table) Snapshot() map[string]int64 {
	result := make(map[string]int64, len(t.cells))
	for name, c := range t.cells {
		result[name] = c.Value
	}
	return result
}
