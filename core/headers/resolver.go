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

package headers

import (
	"github.com/google/safehtml"
	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/google/taxinomia/gridhead/core/layout"
	"golang.org/x/text/cases"
)

// Class names of the auto-created columns.
const (
	OrderClass    = "gm-order"
	CheckboxClass = "gm-checkbox"
)

// Cell holds everything needed to render one header cell.
type Cell struct {
	Name string
	Kind columns.Kind

	Colspan int
	Rowspan int
	Width   string // "auto" when the column sets none

	Hidden bool
	Align  string

	// Sorting is the current sort token of a sortable cell, empty when the
	// cell is sortable without a direction.
	Sortable bool
	Sorting  string

	Filter         bool
	FilterSelected string

	Fixed  string
	Remind bool

	AutoCreate bool
	ClassName  string // OrderClass or CheckboxClass for auto-created cells

	Label       string // column text as defined, before escaping or compiling
	Text        safehtml.HTML
	CompileAttr string

	DragEligible bool
}

// Resolve derives the cell of col. Sorted columns record their token in
// s.SortData. For filterable columns the selection flows one way: an unset
// selection is taken from s.Query, a set one is written to it.
func Resolve(col *columns.Column, s *Settings) Cell {
	cell := Cell{
		Name:    col.Key,
		Kind:    col.Kind,
		Colspan: col.Colspan,
		Rowspan: col.Rowspan,
		Width:   col.Width,
		Hidden:  !col.IsShow,
		Align:   col.Align,
		Remind:  col.Remind,
		Label:   col.Text,
	}
	if cell.Width == "" {
		cell.Width = "auto"
	}

	resolveSorting(&cell, col, s)
	resolveFilter(&cell, col, s)

	if col.Fixed == "left" || col.Fixed == "right" {
		cell.Fixed = col.Fixed
	}

	switch col.Kind {
	case columns.KindOrder:
		cell.AutoCreate = true
		cell.ClassName = OrderClass
		cell.Text = orderContent(s)
	case columns.KindCheckbox:
		cell.AutoCreate = true
		cell.ClassName = CheckboxClass
		cell.Text = checkboxContent(s)
	default:
		compile := s.CompileText
		if compile == nil {
			compile = EscapeText
		}
		compiled := compile(s, col.Key, col.Text)
		cell.Text = compiled.Text
		cell.CompileAttr = compiled.CompileAttr
	}

	cell.DragEligible = s.SupportDrag && !col.IsAutoCreate && !col.DisableCustomize
	return cell
}

func resolveSorting(cell *Cell, col *columns.Column, s *Settings) {
	if !col.Sortable && col.Sorting == "" {
		return
	}
	cell.Sortable = true
	if col.Sorting == "" {
		return
	}

	var token string
	switch {
	case tokenEqual(col.Sorting, s.SortDownText):
		token = s.SortDownText
	case tokenEqual(col.Sorting, s.SortUpText):
		token = s.SortUpText
	default:
		return
	}
	cell.Sorting = token
	if s.SortData == nil {
		s.SortData = SortState{}
	}
	s.SortData[col.Key] = token
}

// tokenEqual compares sort tokens case-insensitively.
func tokenEqual(a, b string) bool {
	if b == "" {
		return false
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

func resolveFilter(cell *Cell, col *columns.Column, s *Settings) {
	if col.Filter == nil {
		return
	}
	cell.Filter = true
	if s.Query == nil {
		s.Query = QueryState{}
	}
	if selected, ok := col.Filter.Selected(); ok {
		s.Query[col.Key] = selected
	} else if value, ok := s.Query[col.Key]; ok {
		col.Filter.SetSelected(value)
	}
	cell.FilterSelected, _ = col.Filter.Selected()
}

func orderContent(s *Settings) safehtml.HTML {
	if s.OrderContent == nil {
		return OrderContent(s)
	}
	return s.OrderContent(s)
}

func checkboxContent(s *Settings) safehtml.HTML {
	if s.CheckboxContent == nil {
		return CheckboxContent(s.UseRadio)
	}
	return s.CheckboxContent(s.UseRadio)
}

// Row is one assembled header row.
type Row struct {
	Cells []Cell
}

// AssembleRows resolves every column of g in row order.
func AssembleRows(g layout.Grid, s *Settings) []Row {
	rows := make([]Row, 0, len(g))
	for _, list := range g {
		row := Row{Cells: make([]Cell, 0, len(list))}
		for _, col := range list {
			row.Cells = append(row.Cells, Resolve(col, s))
		}
		rows = append(rows, row)
	}
	return rows
}
