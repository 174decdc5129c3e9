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

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts the header rows and state into a protobuf Struct, the
// shape served as JSON.
func (vm HeaderViewModel) ToStruct() (*structpb.Struct, error) {
	rows := make([]interface{}, 0, len(vm.Rows))
	for _, row := range vm.Rows {
		cells := make([]interface{}, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cellFields(cell))
		}
		rows = append(rows, cells)
	}

	st, err := structpb.NewStruct(map[string]interface{}{
		"grid":      vm.GridName,
		"title":     vm.Title,
		"nested":    vm.Nested,
		"leafCount": vm.LeafCount,
		"rows":      rows,
		"sortData":  stringMap(vm.SortData),
		"query":     stringMap(vm.Query),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert header %q: %w", vm.GridName, err)
	}
	return st, nil
}

// ToJSON returns the indented JSON form of ToStruct.
func (vm HeaderViewModel) ToJSON() ([]byte, error) {
	st, err := vm.ToStruct()
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
}

func cellFields(cell HeaderCellView) map[string]interface{} {
	fields := map[string]interface{}{
		"name":         cell.Name,
		"colspan":      cell.Colspan,
		"rowspan":      cell.Rowspan,
		"width":        cell.Width,
		"hidden":       cell.Hidden,
		"text":         cell.Text.String(),
		"dragEligible": cell.DragEligible,
	}
	if cell.Align != "" {
		fields["align"] = cell.Align
	}
	if cell.Sortable {
		fields["sorting"] = cell.Sorting
	}
	if cell.Filter {
		fields["filter"] = cell.FilterSelected
		if len(cell.FilterOptions) > 0 {
			options := make([]interface{}, 0, len(cell.FilterOptions))
			for _, o := range cell.FilterOptions {
				options = append(options, map[string]interface{}{"value": o.Value, "text": o.Text})
			}
			fields["filterOptions"] = options
		}
	}
	if cell.Fixed != "" {
		fields["fixed"] = cell.Fixed
	}
	if cell.Remind {
		fields["remind"] = true
	}
	if cell.AutoCreate {
		fields["special"] = cell.ClassName
	}
	if cell.CompileAttr != "" {
		fields["compileAttr"] = cell.CompileAttr
	}
	return fields
}

func stringMap(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
