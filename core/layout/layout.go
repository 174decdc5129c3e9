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

// Package layout turns a column tree into the rows of a table header.
//
// Every column is placed in the row of its level. Group columns occupy one
// row and span the width of their leaves; leaves span down to the last row.
package layout

import (
	"github.com/google/taxinomia/gridhead/core/columns"
)

// Grid is the header in row-major order. Row 0 is the topmost row and each
// row lists its columns left to right.
type Grid [][]*columns.Column

// Build lays out the columns of m and annotates each with its rowspan and
// colspan. In flat mode all columns land in one row with both spans set to 1.
func Build(m *columns.Map, nested bool) (Grid, error) {
	if err := m.Validate(nested); err != nil {
		return nil, err
	}

	top := m.TopLevel()
	if !nested {
		for _, col := range top {
			col.Rowspan = 1
			col.Colspan = 1
		}
		return Grid{top}, nil
	}

	maxLevel := MaxLevel(m)
	e := &engine{
		columns: m,
		rows:    make(Grid, maxLevel+1),
	}
	e.rows[0] = top
	e.visit(top, maxLevel+1)
	return e.rows, nil
}

// MaxLevel returns the deepest level of any column in m.
func MaxLevel(m *columns.Map) int {
	maxLevel := 0
	for _, key := range m.Keys() {
		if level := m.Get(key).Level; level > maxLevel {
			maxLevel = level
		}
	}
	return maxLevel
}

type engine struct {
	columns *columns.Map
	rows    Grid
}

// visit walks list top-down. Groups take one row and start with a colspan of
// their child count; as their children turn out to be groups the extra width
// is pushed up the parent chain.
func (e *engine) visit(list []*columns.Column, rowspan int) {
	for _, col := range list {
		if col.IsGroup() {
			col.Rowspan = 1
			e.setColspan(col, len(col.Children))
			children := make([]*columns.Column, len(col.Children))
			for i, key := range col.Children {
				children[i] = e.columns.Get(key)
			}
			e.visit(children, rowspan-1)
		} else {
			col.Rowspan = rowspan
			col.Colspan = 1
		}

		// Level 0 is the top list itself.
		if col.Level > 0 {
			e.rows[col.Level] = append(e.rows[col.Level], col)
		}
	}
}

// setColspan sets the colspan of a group that was counted as one column by its
// ancestors and adds the difference to every ancestor.
func (e *engine) setColspan(col *columns.Column, colspan int) {
	col.Colspan = colspan
	delta := colspan - 1
	if delta == 0 {
		return
	}
	for parent := e.columns.Parent(col); parent != nil; parent = e.columns.Parent(parent) {
		parent.Colspan += delta
	}
}

// LeafCount returns the number of leaf columns in m.
func LeafCount(m *columns.Map) int {
	n := 0
	for _, key := range m.Keys() {
		if !m.Get(key).IsGroup() {
			n++
		}
	}
	return n
}
