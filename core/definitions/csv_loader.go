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

package definitions

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/taxinomia/gridhead/core/columns"
)

// CSVLoader reads column lists from .csv files. The first row names the
// fields, one column per following row:
//
//	key,parent,text,width,sortable,filter
//	customer,,Customer,,,
//	name,customer,Name,120px,true,
//	region,customer,Region,,,north=North;south=South
//
// A parent must appear before its children. Grid settings cannot be set from
// CSV; the grid uses the defaults.
type CSVLoader struct{}

var csvFields = map[string]bool{
	"key":               true,
	"parent":            true,
	"text":              true,
	"width":             true,
	"align":             true,
	"fixed":             true,
	"hidden":            true,
	"sortable":          true,
	"sorting":           true,
	"filter":            true,
	"selected":          true,
	"remind":            true,
	"disable_customize": true,
}

// Extensions implements Loader.
func (CSVLoader) Extensions() []string {
	return []string{".csv"}
}

// csvNode is a column definition whose children are still being collected
type csvNode struct {
	def      columns.Definition
	children []*csvNode
}

// Load implements Loader.
func (CSVLoader) Load(name string, data []byte) (*Grid, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("definition %q is empty", name)
	}

	// Map header names to field positions
	fieldIndex := make(map[string]int)
	for i, header := range records[0] {
		field := strings.ToLower(strings.TrimSpace(header))
		if !csvFields[field] {
			return nil, fmt.Errorf("definition %q: unknown field %q", name, header)
		}
		fieldIndex[field] = i
	}
	if _, ok := fieldIndex["key"]; !ok {
		return nil, fmt.Errorf("definition %q: missing key field", name)
	}

	var top []*csvNode
	nodes := make(map[string]*csvNode)
	for line, record := range records[1:] {
		get := func(field string) string {
			if i, ok := fieldIndex[field]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		flag := func(field string) (bool, error) {
			value := get(field)
			if value == "" {
				return false, nil
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return false, fmt.Errorf("definition %q line %d: field %s: %w", name, line+2, field, err)
			}
			return b, nil
		}

		node := &csvNode{def: columns.Definition{
			Key:   get("key"),
			Text:  get("text"),
			Width: get("width"),
			Align: get("align"),
			Fixed: get("fixed"),
		}}
		var err error
		if node.def.Hidden, err = flag("hidden"); err != nil {
			return nil, err
		}
		if node.def.Remind, err = flag("remind"); err != nil {
			return nil, err
		}
		if node.def.DisableCustomize, err = flag("disable_customize"); err != nil {
			return nil, err
		}
		sortable, err := flag("sortable")
		if err != nil {
			return nil, err
		}
		if sorting := get("sorting"); sortable || sorting != "" {
			node.def.Sorting = &sorting
		}
		if filter, selected := get("filter"), get("selected"); filter != "" || selected != "" {
			node.def.Filter = parseCSVFilter(filter, selected)
		}

		if _, exists := nodes[node.def.Key]; exists {
			return nil, fmt.Errorf("definition %q line %d: duplicate key %q", name, line+2, node.def.Key)
		}
		nodes[node.def.Key] = node

		parentKey := get("parent")
		if parentKey == "" {
			top = append(top, node)
			continue
		}
		parent, ok := nodes[parentKey]
		if !ok {
			return nil, fmt.Errorf("definition %q line %d: parent %q must be defined before %q", name, line+2, parentKey, node.def.Key)
		}
		parent.children = append(parent.children, node)
	}

	return newGrid(name, settings{}, csvColumns(top)), nil
}

// parseCSVFilter reads filter options written as value=Text pairs separated
// by semicolons. "*" declares a filter without options.
func parseCSVFilter(options, selected string) *columns.FilterDefinition {
	f := &columns.FilterDefinition{}
	if selected != "" {
		f.Selected = &selected
	}
	if options == "*" {
		return f
	}
	for _, option := range strings.Split(options, ";") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		value, text, found := strings.Cut(option, "=")
		if !found {
			text = value
		}
		f.Options = append(f.Options, columns.FilterOption{Value: value, Text: text})
	}
	return f
}

func csvColumns(in []*csvNode) []columns.Definition {
	if len(in) == 0 {
		return nil
	}
	out := make([]columns.Definition, len(in))
	for i, node := range in {
		out[i] = node.def
		out[i].Children = csvColumns(node.children)
	}
	return out
}
