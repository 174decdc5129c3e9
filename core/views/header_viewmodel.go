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

package views

import (
	"github.com/google/safehtml"
	"github.com/google/taxinomia/gridhead/core/headers"
)

// HeaderViewModel contains a laid out header formatted for template consumption
type HeaderViewModel struct {
	Title      string
	GridName   string
	Nested     bool
	Rows       []HeaderRowView
	LeafCount  int          // Number of data columns under the header
	CurrentURL safehtml.URL // Current URL for building links
	JSONURL    safehtml.URL // Same view as JSON

	// State after resolution; sorted and filtered columns of the header
	SortData map[string]string
	Query    map[string]string

	HiddenColumns []ColumnToggle // Columns hidden through the URL, with links to show them again
	Compiled      []string       // Columns whose header text was rendered by code, in compile id order

	// Timing info
	Timings []TimingEntry
	TotalMs string
}

// HeaderRowView is one header row
type HeaderRowView struct {
	Cells []HeaderCellView
}

// HeaderCellView is a resolved header cell plus the values the template needs
type HeaderCellView struct {
	headers.Cell

	Style      safehtml.Style // Width of the cell
	ClassNames string         // Space separated class list

	SortURL        safehtml.URL // Link cycling the sort of a sortable cell
	ClearFilterURL safehtml.URL // Link removing the selected filter
	FilterOptions  []FilterOptionView
	HideURL        safehtml.URL // Link hiding the column, set for draggable leaf cells
	HasHideURL     bool
}

// FilterOptionView is one selectable value of a filterable cell
type FilterOptionView struct {
	Value    string
	Text     string // Value when the option has no text
	Selected bool
	URL      safehtml.URL // Link selecting the option
}

// ColumnToggle is a link showing a hidden column again
type ColumnToggle struct {
	Name      string
	ToggleURL safehtml.URL
}

// TimingEntry represents a single timing measurement
type TimingEntry struct {
	Operation  string
	DurationMs string
}

// LandingViewModel lists the grids that can be viewed
type LandingViewModel struct {
	Title    string
	Subtitle string
	Grids    []GridInfo
}

// GridInfo describes one grid on the landing page
type GridInfo struct {
	Name        string
	Title       string
	URL         safehtml.URL
	ColumnCount int // Number of data columns
	RowCount    int // Number of header rows
}
