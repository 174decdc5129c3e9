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

package columns

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTopology is returned when the column tree cannot be laid out
// into a rectangular header.
var ErrInvalidTopology = errors.New("invalid column topology")

// Map is the flat lookup of all columns of a header, keyed by column key.
// All tree relations go through keys, so columns can be annotated in place.
type Map struct {
	columns map[string]*Column
	keys    []string // insertion order
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{
		columns: make(map[string]*Column),
	}
}

// Add inserts a column. Keys must be non-empty and unique.
func (m *Map) Add(c *Column) error {
	if c.Key == "" {
		return fmt.Errorf("%w: column with empty key", ErrInvalidTopology)
	}
	if _, exists := m.columns[c.Key]; exists {
		return fmt.Errorf("%w: duplicate column key %q", ErrInvalidTopology, c.Key)
	}
	m.columns[c.Key] = c
	m.keys = append(m.keys, c.Key)
	return nil
}

// Get returns the column for key, or nil.
func (m *Map) Get(key string) *Column {
	return m.columns[key]
}

// Parent returns the enclosing group of c, or nil for a top-level column.
func (m *Map) Parent(c *Column) *Column {
	if c.ParentKey == "" {
		return nil
	}
	return m.columns[c.ParentKey]
}

// Keys returns all column keys in insertion order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of columns.
func (m *Map) Len() int {
	return len(m.keys)
}

// IsNested reports whether any column groups other columns.
func (m *Map) IsNested() bool {
	for _, key := range m.keys {
		if m.columns[key].IsGroup() {
			return true
		}
	}
	return false
}

// TopLevel returns the level-0 columns ordered by index.
func (m *Map) TopLevel() []*Column {
	var top []*Column
	for _, key := range m.keys {
		if col := m.columns[key]; col.Level == 0 {
			top = append(top, col)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Index < top[j].Index
	})
	return top
}

// Validate checks that the columns form a tree the layout engine can lay out:
// top-level indices cover 0..n-1 without gaps, every child sits at its parent's
// level + 1 with an index equal to its position, and every non-top column is
// listed by its parent. In flat mode no column may have a parent or children.
func (m *Map) Validate(nested bool) error {
	if !nested {
		for _, key := range m.keys {
			col := m.columns[key]
			if col.ParentKey != "" || col.IsGroup() || col.Level != 0 {
				return fmt.Errorf("%w: column %q is nested but the header is flat", ErrInvalidTopology, key)
			}
		}
		return m.validateTopIndices()
	}

	listed := make(map[string]bool, len(m.keys))
	for _, key := range m.keys {
		col := m.columns[key]
		if col.Level < 0 {
			return fmt.Errorf("%w: column %q has negative level %d", ErrInvalidTopology, key, col.Level)
		}
		if col.ParentKey == "" && col.Level != 0 {
			return fmt.Errorf("%w: column %q has no parent but level %d", ErrInvalidTopology, key, col.Level)
		}
		for i, childKey := range col.Children {
			child := m.columns[childKey]
			if child == nil {
				return fmt.Errorf("%w: column %q lists unknown child %q", ErrInvalidTopology, key, childKey)
			}
			if listed[childKey] {
				return fmt.Errorf("%w: column %q is listed more than once", ErrInvalidTopology, childKey)
			}
			listed[childKey] = true
			if child.ParentKey != key {
				return fmt.Errorf("%w: column %q is listed by %q but its parent is %q", ErrInvalidTopology, childKey, key, child.ParentKey)
			}
			if child.Level != col.Level+1 {
				return fmt.Errorf("%w: column %q has level %d, want %d", ErrInvalidTopology, childKey, child.Level, col.Level+1)
			}
			if child.Index != i {
				return fmt.Errorf("%w: column %q has index %d, want %d", ErrInvalidTopology, childKey, child.Index, i)
			}
		}
	}
	for _, key := range m.keys {
		col := m.columns[key]
		if col.ParentKey == "" {
			continue
		}
		if m.columns[col.ParentKey] == nil {
			return fmt.Errorf("%w: column %q has unknown parent %q", ErrInvalidTopology, key, col.ParentKey)
		}
		if !listed[key] {
			return fmt.Errorf("%w: column %q is not listed by its parent %q", ErrInvalidTopology, key, col.ParentKey)
		}
	}
	return m.validateTopIndices()
}

func (m *Map) validateTopIndices() error {
	top := m.TopLevel()
	for i, col := range top {
		if col.Index != i {
			return fmt.Errorf("%w: top-level column %q has index %d, want %d", ErrInvalidTopology, col.Key, col.Index, i)
		}
	}
	return nil
}
