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
	"strconv"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

// SortState maps a column key to its current sort token.
type SortState map[string]string

// QueryState maps a column key to its selected filter value.
type QueryState map[string]string

// CompiledText is the display text of a data column header.
type CompiledText struct {
	Text safehtml.HTML
	// CompileAttr identifies the header for a later compile pass; empty when
	// the text needs no compiling.
	CompileAttr string
}

// TextCompiler turns the raw text of a data column into display text.
type TextCompiler func(s *Settings, key, text string) CompiledText

// OrderContentFunc returns the header content of the row-order column.
type OrderContentFunc func(s *Settings) safehtml.HTML

// CheckboxContentFunc returns the header content of the row-checkbox column.
type CheckboxContentFunc func(useRadio bool) safehtml.HTML

// Default sort tokens.
const (
	DefaultSortUpText   = "ASC"
	DefaultSortDownText = "DESC"
	DefaultOrderText    = "order"
)

// Settings are the grid-wide inputs of header rendering. SortData and Query
// are owned by the caller and updated while cells are resolved; a Settings
// value must not be shared by concurrent render passes.
type Settings struct {
	GridName string
	Nested   bool

	SortData SortState
	Query    QueryState

	SortUpText   string
	SortDownText string

	SupportDrag bool
	UseRadio    bool
	OrderText   string

	CompileText     TextCompiler
	OrderContent    OrderContentFunc
	CheckboxContent CheckboxContentFunc
}

// NewSettings returns Settings with the default tokens and collaborators.
func NewSettings() *Settings {
	return &Settings{
		SortData:        SortState{},
		Query:           QueryState{},
		SortUpText:      DefaultSortUpText,
		SortDownText:    DefaultSortDownText,
		SupportDrag:     true,
		OrderText:       DefaultOrderText,
		CompileText:     EscapeText,
		OrderContent:    OrderContent,
		CheckboxContent: CheckboxContent,
	}
}

// EscapeText is the default TextCompiler: the raw text, HTML-escaped.
func EscapeText(_ *Settings, _, text string) CompiledText {
	return CompiledText{Text: safehtml.HTMLEscaped(text)}
}

// OrderContent is the default OrderContentFunc.
func OrderContent(s *Settings) safehtml.HTML {
	text := s.OrderText
	if text == "" {
		text = DefaultOrderText
	}
	return safehtml.HTMLEscaped(text)
}

var checkboxTemplate = template.Must(template.New("checkbox").Parse(
	`<input type="checkbox" class="gm-checkbox-input" aria-label="select all">`))

// CheckboxContent is the default CheckboxContentFunc. Single-select grids get
// an empty header since there is nothing to select all of.
func CheckboxContent(useRadio bool) safehtml.HTML {
	if useRadio {
		return safehtml.HTML{}
	}
	html, err := checkboxTemplate.ExecuteToHTML(nil)
	if err != nil {
		return safehtml.HTML{}
	}
	return html
}

// HeaderRenderFunc produces the header content of one column.
type HeaderRenderFunc func(key string) safehtml.HTML

// Compiler is a TextCompiler for headers rendered by code. Columns with a
// registered render func get a sequential compile id; the others are escaped.
type Compiler struct {
	Renderers map[string]HeaderRenderFunc

	compiled []string
}

// Compile implements TextCompiler.
func (c *Compiler) Compile(s *Settings, key, text string) CompiledText {
	render, ok := c.Renderers[key]
	if !ok {
		return EscapeText(s, key, text)
	}
	id := len(c.compiled)
	c.compiled = append(c.compiled, key)
	return CompiledText{
		Text:        render(key),
		CompileAttr: strconv.Itoa(id),
	}
}

// Compiled returns the keys that received a compile id, in id order.
func (c *Compiler) Compiled() []string {
	return append([]string(nil), c.compiled...)
}
