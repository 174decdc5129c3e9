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

// Reserved keys of the columns the grid creates by itself.
const (
	OrderKey    = "gm_order"
	CheckboxKey = "gm_checkbox"
)

// Kind tells a data column apart from the two auto-created columns.
// It is resolved once when the Map is built.
type Kind int

const (
	KindData Kind = iota
	KindOrder
	KindCheckbox
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindOrder:
		return "order"
	case KindCheckbox:
		return "checkbox"
	default:
		return "unknown"
	}
}

// KindOf returns the kind a column key maps to.
func KindOf(key string) Kind {
	switch key {
	case OrderKey:
		return KindOrder
	case CheckboxKey:
		return KindCheckbox
	default:
		return KindData
	}
}

// Filter holds the filter state of a filterable column.
type Filter struct {
	Options []FilterOption

	selected    string
	hasSelected bool
}

// FilterOption is one selectable value of a filter.
type FilterOption struct {
	Value string
	Text  string
}

// Selected returns the selected filter value and whether one is set.
func (f *Filter) Selected() (string, bool) {
	return f.selected, f.hasSelected
}

// SetSelected marks value as the selected filter value.
func (f *Filter) SetSelected(value string) {
	f.selected = value
	f.hasSelected = true
}

// ClearSelected drops the selection.
func (f *Filter) ClearSelected() {
	f.selected = ""
	f.hasSelected = false
}

// Column is one header cell definition, either a leaf or a group.
// Children holds child keys; the columns themselves live in the Map.
type Column struct {
	Key       string // must be unique in a Map
	ParentKey string // empty for top-level columns
	Level     int
	Index     int
	Children  []string
	Kind      Kind

	// Computed by the layout engine.
	Rowspan int
	Colspan int

	Text  string
	Width string
	Align string
	Fixed string // "left", "right" or empty

	IsShow bool

	// Sortable is set when the column takes part in sorting. Sorting holds
	// the current direction token, empty when the column is unsorted.
	Sortable bool
	Sorting  string

	Filter *Filter

	Remind           bool
	IsAutoCreate     bool
	DisableCustomize bool
}

// IsGroup reports whether the column has children.
func (c *Column) IsGroup() bool {
	return len(c.Children) > 0
}
