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
	"fmt"

	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCLLoader reads HCL definitions, where every column is a labeled block:
//
//	title = "Orders"
//	column "address" {
//	  text = "Address"
//	  column "city" { text = "City" }
//	}
type HCLLoader struct{}

type hclGrid struct {
	Name         string       `hcl:"name,optional"`
	Title        string       `hcl:"title,optional"`
	Nested       *bool        `hcl:"nested,optional"`
	SortUpText   string       `hcl:"sort_up_text,optional"`
	SortDownText string       `hcl:"sort_down_text,optional"`
	SupportDrag  *bool        `hcl:"support_drag,optional"`
	AutoOrder    bool         `hcl:"auto_order,optional"`
	Checkbox     bool         `hcl:"checkbox,optional"`
	UseRadio     bool         `hcl:"use_radio,optional"`
	OrderText    string       `hcl:"order_text,optional"`
	Columns      []*hclColumn `hcl:"column,block"`
}

type hclColumn struct {
	Key              string       `hcl:"key,label"`
	Text             string       `hcl:"text,optional"`
	Width            string       `hcl:"width,optional"`
	Align            string       `hcl:"align,optional"`
	Fixed            string       `hcl:"fixed,optional"`
	Hidden           bool         `hcl:"hidden,optional"`
	Sorting          *string      `hcl:"sorting,optional"`
	Remind           bool         `hcl:"remind,optional"`
	DisableCustomize bool         `hcl:"disable_customize,optional"`
	Filter           *hclFilter   `hcl:"filter,block"`
	Columns          []*hclColumn `hcl:"column,block"`
}

type hclFilter struct {
	Selected *string            `hcl:"selected,optional"`
	Options  []*hclFilterOption `hcl:"option,block"`
}

type hclFilterOption struct {
	Value string `hcl:"value,label"`
	Text  string `hcl:"text,optional"`
}

// Extensions implements Loader.
func (HCLLoader) Extensions() []string {
	return []string{".hcl"}
}

// Load implements Loader.
func (HCLLoader) Load(name string, data []byte) (*Grid, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name+".hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse definition %q: %w", name, diags)
	}

	var doc hclGrid
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode definition %q: %w", name, diags)
	}

	return newGrid(name, settings{
		Name:         doc.Name,
		Title:        doc.Title,
		Nested:       doc.Nested,
		SortUpText:   doc.SortUpText,
		SortDownText: doc.SortDownText,
		SupportDrag:  doc.SupportDrag,
		AutoOrder:    doc.AutoOrder,
		Checkbox:     doc.Checkbox,
		UseRadio:     doc.UseRadio,
		OrderText:    doc.OrderText,
	}, hclColumns(doc.Columns)), nil
}

func hclColumns(in []*hclColumn) []columns.Definition {
	if len(in) == 0 {
		return nil
	}
	out := make([]columns.Definition, len(in))
	for i, c := range in {
		out[i] = columns.Definition{
			Key:              c.Key,
			Text:             c.Text,
			Width:            c.Width,
			Align:            c.Align,
			Fixed:            c.Fixed,
			Hidden:           c.Hidden,
			Sorting:          c.Sorting,
			Remind:           c.Remind,
			DisableCustomize: c.DisableCustomize,
			Children:         hclColumns(c.Columns),
		}
		if c.Filter != nil {
			f := &columns.FilterDefinition{Selected: c.Filter.Selected}
			for _, o := range c.Filter.Options {
				f.Options = append(f.Options, columns.FilterOption{Value: o.Value, Text: o.Text})
			}
			out[i].Filter = f
		}
	}
	return out
}
