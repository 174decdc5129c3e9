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
	"fmt"
)

// Widths of the auto-created columns.
const (
	OrderWidth    = "50px"
	CheckboxWidth = "40px"
)

// Definition is the caller-facing description of a column tree, as read from
// a grid definition file or written in code.
type Definition struct {
	Key   string
	Text  string
	Width string
	Align string
	Fixed string

	Hidden bool

	// Sorting is nil for columns that cannot be sorted. An empty string marks
	// a sortable column without a current direction.
	Sorting *string

	Filter *FilterDefinition

	Remind           bool
	DisableCustomize bool

	Children []Definition
}

// FilterDefinition describes the filter of a column.
type FilterDefinition struct {
	Selected *string
	Options  []FilterOption
}

// BuildOptions controls the auto-created columns.
type BuildOptions struct {
	AutoOrder bool
	Checkbox  bool
}

// Build creates a Map from a column definition tree. It assigns level, index
// and parent key to every column and prepends the auto-created columns
// requested by opts.
func Build(defs []Definition, opts BuildOptions) (*Map, error) {
	m := NewMap()

	var top []*Column
	if opts.AutoOrder {
		top = append(top, autoColumn(OrderKey, OrderWidth))
	}
	if opts.Checkbox {
		top = append(top, autoColumn(CheckboxKey, CheckboxWidth))
	}
	for i, col := range top {
		col.Index = i
		if err := m.Add(col); err != nil {
			return nil, err
		}
	}

	offset := len(top)
	for i := range defs {
		if _, err := m.addDefinition(&defs[i], "", 0, offset+i); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func autoColumn(key, width string) *Column {
	return &Column{
		Key:              key,
		Kind:             KindOf(key),
		Width:            width,
		Align:            "center",
		IsShow:           true,
		IsAutoCreate:     true,
		DisableCustomize: true,
	}
}

func (m *Map) addDefinition(def *Definition, parentKey string, level, index int) (*Column, error) {
	if KindOf(def.Key) != KindData {
		return nil, fmt.Errorf("%w: column key %q is reserved", ErrInvalidTopology, def.Key)
	}

	col := &Column{
		Key:              def.Key,
		ParentKey:        parentKey,
		Level:            level,
		Index:            index,
		Kind:             KindData,
		Text:             def.Text,
		Width:            def.Width,
		Align:            def.Align,
		Fixed:            def.Fixed,
		IsShow:           !def.Hidden,
		Remind:           def.Remind,
		DisableCustomize: def.DisableCustomize,
	}
	if def.Sorting != nil {
		col.Sortable = true
		col.Sorting = *def.Sorting
	}
	if def.Filter != nil {
		col.Filter = &Filter{Options: append([]FilterOption(nil), def.Filter.Options...)}
		if def.Filter.Selected != nil {
			col.Filter.SetSelected(*def.Filter.Selected)
		}
	}
	if err := m.Add(col); err != nil {
		return nil, err
	}

	for i := range def.Children {
		child, err := m.addDefinition(&def.Children[i], col.Key, level+1, i)
		if err != nil {
			return nil, err
		}
		col.Children = append(col.Children, child.Key)
	}
	return col, nil
}
