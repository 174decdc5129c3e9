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

package rendering

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/google/taxinomia/gridhead/core/definitions"
	"github.com/google/taxinomia/gridhead/core/headers"
	"github.com/google/taxinomia/gridhead/core/query"
	"github.com/google/taxinomia/gridhead/core/views"
)

func strPtr(s string) *string {
	return &s
}

func buildViewModel(t *testing.T, g *definitions.Grid, raw string) views.HeaderViewModel {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse failed: %v", err)
	}
	vm, err := views.BuildHeaderViewModel(g, query.NewQuery(u), views.BuildOptions{})
	if err != nil {
		t.Fatalf("BuildHeaderViewModel failed: %v", err)
	}
	return vm
}

func nestedGrid() *definitions.Grid {
	return &definitions.Grid{
		Name:         "people",
		Title:        "People <list>",
		SortUpText:   headers.DefaultSortUpText,
		SortDownText: headers.DefaultSortDownText,
		SupportDrag:  true,
		Columns: []columns.Definition{
			{Key: "Group1", Text: "Group1", Children: []columns.Definition{
				{Key: "A", Text: "A", Sorting: strPtr("")},
				{Key: "B", Text: "B"},
			}},
			{Key: "Solo", Text: "Solo", Filter: &columns.FilterDefinition{
				Options: []columns.FilterOption{{Value: "x", Text: "Ex"}, {Value: "y"}},
			}},
		},
	}
}

func TestRender(t *testing.T) {
	r, err := NewHeaderRenderer()
	if err != nil {
		t.Fatalf("NewHeaderRenderer failed: %v", err)
	}

	vm := buildViewModel(t, nestedGrid(), "/header?grid=people&filter:Solo=x&hidden=B")
	var buf bytes.Buffer
	if err := r.Render(&buf, vm); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<thead data-gridhead="people">`,
		`data-th-name="Group1" colspan="2" rowspan="1"`,
		`data-th-name="Solo" colspan="1" rowspan="2"`,
		`data-filter="x"`,
		`class="filter-clear"`,
		`class="filter-option"`,
		`data-value="x" data-selected="true">Ex</a>`,
		`data-value="y">y</a>`,
		`class="sorting-action"`,
		`cell-hidden`,
		`People &lt;list&gt;`,
		`width:auto;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "<tr>"); got != 2 {
		t.Errorf("Expected 2 header rows, got %d", got)
	}
	if strings.Contains(out, "<list>") {
		t.Errorf("Expected title to be escaped")
	}
}

func TestRenderThead(t *testing.T) {
	r, err := NewHeaderRenderer()
	if err != nil {
		t.Fatalf("NewHeaderRenderer failed: %v", err)
	}

	vm := buildViewModel(t, nestedGrid(), "/header?grid=people")
	html, err := r.RenderThead(vm)
	if err != nil {
		t.Fatalf("RenderThead failed: %v", err)
	}
	out := html.String()
	if !strings.HasPrefix(out, "<thead") || !strings.HasSuffix(out, "</thead>") {
		t.Errorf("Expected a bare thead element, got:\n%s", out)
	}
	if strings.Contains(out, "<html>") {
		t.Errorf("Expected no page around the thead")
	}
}

func TestRenderLanding(t *testing.T) {
	r, err := NewHeaderRenderer()
	if err != nil {
		t.Fatalf("NewHeaderRenderer failed: %v", err)
	}

	vm := views.LandingViewModel{
		Title:    "Grids",
		Subtitle: "Header layouts",
		Grids: []views.GridInfo{
			{Name: "people", Title: "People", URL: safehtml.URLSanitized("/header?grid=people"), ColumnCount: 3, RowCount: 2},
		},
	}
	var buf bytes.Buffer
	if err := r.RenderLanding(&buf, vm); err != nil {
		t.Fatalf("RenderLanding failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "/header?grid=people") {
		t.Errorf("Expected link to grid, got:\n%s", out)
	}
	if !strings.Contains(out, "(3 columns, 2 header rows)") {
		t.Errorf("Expected grid sizes, got:\n%s", out)
	}
}

func TestToAscii(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		g := &definitions.Grid{
			Name: "flat",
			Columns: []columns.Definition{
				{Key: "a", Text: "a"},
				{Key: "b", Text: "bb"},
			},
		}
		got := ToAscii(buildViewModel(t, g, "/header?grid=flat"))
		want := "+-+--+\n" +
			"|a|bb|\n" +
			"+-+--+\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ToAscii mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nested", func(t *testing.T) {
		got := ToAscii(buildViewModel(t, nestedGrid(), "/header?grid=people"))
		want := "+------+----+\n" +
			"|Group1|Solo|\n" +
			"+-+----+    |\n" +
			"|A|B   |    |\n" +
			"+-+----+----+\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ToAscii mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("auto columns and wide text", func(t *testing.T) {
		g := &definitions.Grid{
			Name:      "wide",
			AutoOrder: true,
			Checkbox:  true,
			Columns: []columns.Definition{
				{Key: "name", Text: "名前"},
			},
		}
		got := ToAscii(buildViewModel(t, g, "/header?grid=wide&hidden=name"))
		want := "+-+---+------+\n" +
			"|#|[ ]|(名前)|\n" +
			"+-+---+------+\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ToAscii mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("compiled text", func(t *testing.T) {
		bold := template.Must(template.New("bold").Parse(`<b>{{.}}</b>`))
		u, _ := url.Parse("/header?grid=people")
		vm, err := views.BuildHeaderViewModel(nestedGrid(), query.NewQuery(u), views.BuildOptions{
			Renderers: map[string]headers.HeaderRenderFunc{
				"Solo": func(key string) safehtml.HTML {
					h, err := bold.ExecuteToHTML(key)
					if err != nil {
						t.Fatalf("ExecuteToHTML failed: %v", err)
					}
					return h
				},
			},
		})
		if err != nil {
			t.Fatalf("BuildHeaderViewModel failed: %v", err)
		}
		got := ToAscii(vm)
		if strings.Contains(got, "<b>") || !strings.Contains(got, "|Solo|") {
			t.Errorf("Expected the plain column text, got:\n%s", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := ToAscii(views.HeaderViewModel{}); got != "" {
			t.Errorf("Expected empty output, got %q", got)
		}
	})
}
