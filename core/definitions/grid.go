/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package definitions loads grid definitions (header settings plus the
// column tree) from files in various formats, with caching.
package definitions

import (
	"errors"
	"fmt"

	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/google/taxinomia/gridhead/core/headers"
	"github.com/google/taxinomia/gridhead/core/layout"
)

var (
	// ErrUnknownFormat is returned for files no loader is registered for.
	ErrUnknownFormat = errors.New("unknown definition format")
	// ErrGridNotFound is returned when no definition exists for a grid name.
	ErrGridNotFound = errors.New("grid not found")
	// ErrNameMismatch is returned when a definition file names a grid other
	// than the one its file name maps to.
	ErrNameMismatch = errors.New("grid name does not match definition file")
)

// Grid is a grid definition: header settings and the column tree.
// A Grid is shared through the cache and must not be modified once loaded.
type Grid struct {
	Name  string
	Title string

	// Nested forces the header mode; nil means nested iff a column has children.
	Nested *bool

	SortUpText   string
	SortDownText string
	SupportDrag  bool

	AutoOrder bool
	Checkbox  bool
	UseRadio  bool
	OrderText string

	Columns []columns.Definition
}

// IsNested reports whether the header has more than one row.
func (g *Grid) IsNested() bool {
	if g.Nested != nil {
		return *g.Nested
	}
	for i := range g.Columns {
		if len(g.Columns[i].Children) > 0 {
			return true
		}
	}
	return false
}

// BuildColumns creates a fresh column map for one render pass.
func (g *Grid) BuildColumns() (*columns.Map, error) {
	return columns.Build(g.Columns, columns.BuildOptions{
		AutoOrder: g.AutoOrder,
		Checkbox:  g.Checkbox,
	})
}

// Check verifies that the grid can be laid out.
func (g *Grid) Check() error {
	if g.Name == "" {
		return errors.New("grid has no name")
	}
	if len(g.Columns) == 0 {
		return fmt.Errorf("grid %q has no columns", g.Name)
	}
	m, err := g.BuildColumns()
	if err != nil {
		return fmt.Errorf("grid %q: %w", g.Name, err)
	}
	if _, err := layout.Build(m, g.IsNested()); err != nil {
		return fmt.Errorf("grid %q: %w", g.Name, err)
	}
	return nil
}

// Loader is the interface that all definition loaders must implement.
type Loader interface {
	// Extensions returns the file extensions handled, with the leading dot.
	Extensions() []string

	// Load parses a definition. name is used when the file sets none.
	Load(name string, data []byte) (*Grid, error)
}

// settings holds the grid-level fields shared by all file formats.
type settings struct {
	Name         string
	Title        string
	Nested       *bool
	SortUpText   string
	SortDownText string
	SupportDrag  *bool
	AutoOrder    bool
	Checkbox     bool
	UseRadio     bool
	OrderText    string
}

func newGrid(name string, s settings, cols []columns.Definition) *Grid {
	g := &Grid{
		Name:         s.Name,
		Title:        s.Title,
		Nested:       s.Nested,
		SortUpText:   s.SortUpText,
		SortDownText: s.SortDownText,
		SupportDrag:  true,
		AutoOrder:    s.AutoOrder,
		Checkbox:     s.Checkbox,
		UseRadio:     s.UseRadio,
		OrderText:    s.OrderText,
		Columns:      cols,
	}
	if g.Name == "" {
		g.Name = name
	}
	if g.Title == "" {
		g.Title = g.Name
	}
	if g.SortUpText == "" {
		g.SortUpText = headers.DefaultSortUpText
	}
	if g.SortDownText == "" {
		g.SortDownText = headers.DefaultSortDownText
	}
	if s.SupportDrag != nil {
		g.SupportDrag = *s.SupportDrag
	}
	if g.OrderText == "" {
		g.OrderText = headers.DefaultOrderText
	}
	return g
}
