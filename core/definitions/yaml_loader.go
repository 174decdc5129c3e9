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
	"errors"
	"fmt"
	"io"

	"github.com/google/taxinomia/gridhead/core/columns"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads YAML definitions. JSON being a subset of YAML, it also
// reads .json files.
type YAMLLoader struct{}

type yamlGrid struct {
	Name         string       `yaml:"name"`
	Title        string       `yaml:"title"`
	Nested       *bool        `yaml:"nested"`
	SortUpText   string       `yaml:"sort_up_text"`
	SortDownText string       `yaml:"sort_down_text"`
	SupportDrag  *bool        `yaml:"support_drag"`
	AutoOrder    bool         `yaml:"auto_order"`
	Checkbox     bool         `yaml:"checkbox"`
	UseRadio     bool         `yaml:"use_radio"`
	OrderText    string       `yaml:"order_text"`
	Columns      []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Key              string       `yaml:"key"`
	Text             string       `yaml:"text"`
	Width            string       `yaml:"width"`
	Align            string       `yaml:"align"`
	Fixed            string       `yaml:"fixed"`
	Hidden           bool         `yaml:"hidden"`
	Sorting          *string      `yaml:"sorting"`
	Filter           *yamlFilter  `yaml:"filter"`
	Remind           bool         `yaml:"remind"`
	DisableCustomize bool         `yaml:"disable_customize"`
	Columns          []yamlColumn `yaml:"columns"`
}

type yamlFilter struct {
	Selected *string            `yaml:"selected"`
	Options  []yamlFilterOption `yaml:"options"`
}

type yamlFilterOption struct {
	Value string `yaml:"value"`
	Text  string `yaml:"text"`
}

// Extensions implements Loader.
func (YAMLLoader) Extensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Load implements Loader.
func (YAMLLoader) Load(name string, data []byte) (*Grid, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc yamlGrid
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("definition %q is empty", name)
		}
		return nil, fmt.Errorf("failed to parse definition %q: %w", name, err)
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
	}, yamlColumns(doc.Columns)), nil
}

func yamlColumns(in []yamlColumn) []columns.Definition {
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
			Children:         yamlColumns(c.Columns),
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
