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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string {
	return &s
}

// TestBuildAssignsTreePositions tests that Build annotates level, index and parent keys
func TestBuildAssignsTreePositions(t *testing.T) {
	defs := []Definition{
		{Key: "name", Text: "Name"},
		{Key: "address", Text: "Address", Children: []Definition{
			{Key: "city", Text: "City"},
			{Key: "geo", Text: "Geo", Children: []Definition{
				{Key: "lat", Text: "Lat"},
				{Key: "lng", Text: "Lng"},
			}},
		}},
	}

	m, err := Build(defs, BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	type pos struct {
		Parent       string
		Level, Index int
		Children     []string
	}
	got := map[string]pos{}
	for _, key := range m.Keys() {
		c := m.Get(key)
		got[key] = pos{c.ParentKey, c.Level, c.Index, c.Children}
	}
	want := map[string]pos{
		"name":    {"", 0, 0, nil},
		"address": {"", 0, 1, []string{"city", "geo"}},
		"city":    {"address", 1, 0, nil},
		"geo":     {"address", 1, 1, []string{"lat", "lng"}},
		"lat":     {"geo", 2, 0, nil},
		"lng":     {"geo", 2, 1, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unexpected positions (-want +got):\n%s", diff)
	}

	if !m.IsNested() {
		t.Error("Expected map to be nested")
	}
	if err := m.Validate(true); err != nil {
		t.Errorf("Expected built map to validate, got %v", err)
	}
}

// TestBuildAutoCreatedColumns tests that the order and checkbox columns are prepended
func TestBuildAutoCreatedColumns(t *testing.T) {
	m, err := Build([]Definition{{Key: "a"}, {Key: "b"}}, BuildOptions{AutoOrder: true, Checkbox: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var keys []string
	for _, c := range m.TopLevel() {
		keys = append(keys, c.Key)
	}
	want := []string{OrderKey, CheckboxKey, "a", "b"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Unexpected top-level order (-want +got):\n%s", diff)
	}

	order := m.Get(OrderKey)
	if order.Kind != KindOrder || !order.IsAutoCreate || !order.DisableCustomize {
		t.Errorf("Expected order column to be an auto-created order column, got %+v", order)
	}
	if cb := m.Get(CheckboxKey); cb.Kind != KindCheckbox || cb.Width != CheckboxWidth {
		t.Errorf("Expected checkbox column with width %s, got %+v", CheckboxWidth, cb)
	}
	if a := m.Get("a"); a.Kind != KindData || a.IsAutoCreate {
		t.Errorf("Expected plain data column, got %+v", a)
	}
}

// TestBuildColumnAttributes tests the conversion of optional definition fields
func TestBuildColumnAttributes(t *testing.T) {
	defs := []Definition{
		{Key: "plain"},
		{Key: "sortable", Sorting: strPtr("")},
		{Key: "sorted", Sorting: strPtr("DESC"), Hidden: true},
		{Key: "filtered", Filter: &FilterDefinition{Selected: strPtr("open")}},
		{Key: "filterable", Filter: &FilterDefinition{}},
	}
	m, err := Build(defs, BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c := m.Get("plain"); c.Sortable || c.Filter != nil || !c.IsShow {
		t.Errorf("Expected plain visible column, got %+v", c)
	}
	if c := m.Get("sortable"); !c.Sortable || c.Sorting != "" {
		t.Errorf("Expected sortable column without direction, got %+v", c)
	}
	if c := m.Get("sorted"); !c.Sortable || c.Sorting != "DESC" || c.IsShow {
		t.Errorf("Expected hidden column sorted DESC, got %+v", c)
	}
	if v, ok := m.Get("filtered").Filter.Selected(); !ok || v != "open" {
		t.Errorf("Expected selected filter 'open', got %q (set=%v)", v, ok)
	}
	if _, ok := m.Get("filterable").Filter.Selected(); ok {
		t.Error("Expected filter without selection")
	}
}

// TestBuildRejectsBadKeys tests duplicate and reserved keys
func TestBuildRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{"duplicate", []Definition{{Key: "a"}, {Key: "g", Children: []Definition{{Key: "a"}}}}},
		{"reserved", []Definition{{Key: OrderKey}}},
		{"empty", []Definition{{Key: ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.defs, BuildOptions{})
			if !errors.Is(err, ErrInvalidTopology) {
				t.Errorf("Expected ErrInvalidTopology, got %v", err)
			}
		})
	}
}

// TestValidate tests topology validation of hand-annotated maps
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		columns []*Column
		nested  bool
		wantErr bool
	}{
		{
			name:    "dense flat",
			columns: []*Column{{Key: "a", Index: 1}, {Key: "b", Index: 0}},
		},
		{
			name:    "gap in top indices",
			columns: []*Column{{Key: "a", Index: 0}, {Key: "b", Index: 2}},
			wantErr: true,
		},
		{
			name:    "duplicate top index",
			columns: []*Column{{Key: "a", Index: 0}, {Key: "b", Index: 0}},
			wantErr: true,
		},
		{
			name: "group in flat mode",
			columns: []*Column{
				{Key: "g", Children: []string{"c"}},
				{Key: "c", ParentKey: "g", Level: 1},
			},
			wantErr: true,
		},
		{
			name: "consistent nested",
			columns: []*Column{
				{Key: "g", Children: []string{"c1", "c2"}},
				{Key: "c1", ParentKey: "g", Level: 1, Index: 0},
				{Key: "c2", ParentKey: "g", Level: 1, Index: 1},
				{Key: "solo", Index: 1},
			},
			nested: true,
		},
		{
			name: "child level mismatch",
			columns: []*Column{
				{Key: "g", Children: []string{"c"}},
				{Key: "c", ParentKey: "g", Level: 2},
			},
			nested:  true,
			wantErr: true,
		},
		{
			name: "unknown child",
			columns: []*Column{
				{Key: "g", Children: []string{"missing"}},
			},
			nested:  true,
			wantErr: true,
		},
		{
			name: "orphan",
			columns: []*Column{
				{Key: "g"},
				{Key: "c", ParentKey: "g", Level: 1},
			},
			nested:  true,
			wantErr: true,
		},
		{
			name: "child index out of order",
			columns: []*Column{
				{Key: "g", Children: []string{"c1", "c2"}},
				{Key: "c1", ParentKey: "g", Level: 1, Index: 1},
				{Key: "c2", ParentKey: "g", Level: 1, Index: 0},
			},
			nested:  true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMap()
			for _, c := range tt.columns {
				if err := m.Add(c); err != nil {
					t.Fatalf("Add(%q) failed: %v", c.Key, err)
				}
			}
			err := m.Validate(tt.nested)
			if tt.wantErr && !errors.Is(err, ErrInvalidTopology) {
				t.Errorf("Expected ErrInvalidTopology, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
