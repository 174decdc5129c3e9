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
	"fmt"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/google/taxinomia/gridhead/core/definitions"
	"github.com/google/taxinomia/gridhead/core/headers"
	"github.com/google/taxinomia/gridhead/core/layout"
	"github.com/google/taxinomia/gridhead/core/query"
)

// Class names carried by header cells
const (
	ClassAutoCreate = "gm-create"
	ClassDrag       = "drag-action"
	ClassHidden     = "cell-hidden"
	ClassRemind     = "remind"
)

// BuildOptions customizes BuildHeaderViewModel
type BuildOptions struct {
	// Renderers produce the header content of the columns they are keyed by
	Renderers map[string]headers.HeaderRenderFunc
}

// NewSettings creates the render settings of a grid for one request. The sort
// state starts empty; the filter state starts from the non-empty filters of
// the query.
func NewSettings(g *definitions.Grid, q *query.Query) *headers.Settings {
	s := headers.NewSettings()
	s.GridName = g.Name
	s.Nested = g.IsNested()
	s.SortUpText = g.SortUpText
	s.SortDownText = g.SortDownText
	s.SupportDrag = g.SupportDrag
	s.UseRadio = g.UseRadio
	s.OrderText = g.OrderText
	for colName, value := range q.Filters {
		if value != "" {
			s.Query[colName] = value
		}
	}
	return s
}

// ApplyQuery copies the user state of q onto the columns of m: hidden
// columns, filter selections and sort tokens. A filter present in the query
// replaces the selection of the definition; an empty value clears it. Once
// the query sorts anything, columns it does not name lose the direction their
// definition gave them.
func ApplyQuery(m *columns.Map, q *query.Query) {
	for _, colName := range q.Hidden {
		if col := m.Get(colName); col != nil {
			col.IsShow = false
		}
	}

	for colName, value := range q.Filters {
		col := m.Get(colName)
		if col == nil || col.Filter == nil {
			continue
		}
		if value == "" {
			col.Filter.ClearSelected()
		} else {
			col.Filter.SetSelected(value)
		}
	}

	if len(q.Sorts) == 0 {
		return
	}
	for _, key := range m.Keys() {
		col := m.Get(key)
		if !col.Sortable {
			continue
		}
		col.Sorting = q.Sorts[key]
	}
}

// BuildHeaderViewModel lays out the header of g for the request q
func BuildHeaderViewModel(g *definitions.Grid, q *query.Query, opts BuildOptions) (HeaderViewModel, error) {
	m, err := g.BuildColumns()
	if err != nil {
		return HeaderViewModel{}, fmt.Errorf("failed to build columns of %q: %w", g.Name, err)
	}
	ApplyQuery(m, q)

	nested := g.IsNested()
	grid, err := layout.Build(m, nested)
	if err != nil {
		return HeaderViewModel{}, fmt.Errorf("failed to lay out %q: %w", g.Name, err)
	}

	s := NewSettings(g, q)
	var compiler *headers.Compiler
	if len(opts.Renderers) > 0 {
		compiler = &headers.Compiler{Renderers: opts.Renderers}
		s.CompileText = compiler.Compile
	}

	rows := headers.AssembleRows(grid, s)

	vm := HeaderViewModel{
		Title:      g.Title,
		GridName:   g.Name,
		Nested:     nested,
		Rows:       make([]HeaderRowView, 0, len(rows)),
		LeafCount:  layout.LeafCount(m),
		CurrentURL: q.ToSafeURL(),
		JSONURL:    q.WithFormat("json"),
		SortData:   s.SortData,
		Query:      s.Query,
	}
	if compiler != nil {
		vm.Compiled = compiler.Compiled()
	}

	for _, row := range rows {
		rowView := HeaderRowView{Cells: make([]HeaderCellView, 0, len(row.Cells))}
		for _, cell := range row.Cells {
			rowView.Cells = append(rowView.Cells, buildCellView(cell, m.Get(cell.Name), s, q))
		}
		vm.Rows = append(vm.Rows, rowView)
	}

	for _, colName := range q.Hidden {
		if m.Get(colName) == nil {
			continue
		}
		vm.HiddenColumns = append(vm.HiddenColumns, ColumnToggle{
			Name:      colName,
			ToggleURL: q.WithColumnToggled(colName),
		})
	}

	return vm, nil
}

func buildCellView(cell headers.Cell, col *columns.Column, s *headers.Settings, q *query.Query) HeaderCellView {
	view := HeaderCellView{
		Cell:       cell,
		Style:      safehtml.StyleFromProperties(safehtml.StyleProperties{Width: cell.Width}),
		ClassNames: classNames(cell),
	}
	if cell.Sortable {
		view.SortURL = q.WithSort(cell.Name, query.NextSortToken(cell.Sorting, s.SortUpText, s.SortDownText))
	}
	if cell.FilterSelected != "" {
		view.ClearFilterURL = q.WithoutFilter(cell.Name)
	}
	if cell.Filter {
		view.FilterOptions = filterOptions(cell, col.Filter.Options, q)
	}
	if cell.DragEligible && !col.IsGroup() && !cell.Hidden {
		view.HideURL = q.WithColumnToggled(cell.Name)
		view.HasHideURL = true
	}
	return view
}

func filterOptions(cell headers.Cell, options []columns.FilterOption, q *query.Query) []FilterOptionView {
	if len(options) == 0 {
		return nil
	}
	out := make([]FilterOptionView, 0, len(options))
	for _, o := range options {
		text := o.Text
		if text == "" {
			text = o.Value
		}
		out = append(out, FilterOptionView{
			Value:    o.Value,
			Text:     text,
			Selected: o.Value == cell.FilterSelected,
			URL:      q.WithFilter(cell.Name, o.Value),
		})
	}
	return out
}

func classNames(cell headers.Cell) string {
	var classes []string
	if cell.AutoCreate {
		classes = append(classes, ClassAutoCreate, cell.ClassName)
	}
	if cell.DragEligible {
		classes = append(classes, ClassDrag)
	}
	if cell.Hidden {
		classes = append(classes, ClassHidden)
	}
	if cell.Remind {
		classes = append(classes, ClassRemind)
	}
	return strings.Join(classes, " ")
}
