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

package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, raw string) *Query {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q) failed: %v", raw, err)
	}
	return NewQuery(u)
}

// TestNewQuery tests parsing of grid, sort, filter and hidden parameters
func TestNewQuery(t *testing.T) {
	q := mustParse(t, "/header?grid=orders&sort:amount=DESC&filter:status=open&filter:region=&hidden=notes,tags&format=json")

	if q.Path != "/header" || q.Grid != "orders" || q.Format != "json" {
		t.Errorf("Unexpected path/grid/format: %q %q %q", q.Path, q.Grid, q.Format)
	}
	if diff := cmp.Diff(map[string]string{"amount": "DESC"}, q.Sorts); diff != "" {
		t.Errorf("Unexpected sorts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"status": "open", "region": ""}, q.Filters); diff != "" {
		t.Errorf("Unexpected filters (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"notes", "tags"}, q.Hidden); diff != "" {
		t.Errorf("Unexpected hidden columns (-want +got):\n%s", diff)
	}
	if !q.IsColumnHidden("tags") || q.IsColumnHidden("amount") {
		t.Error("IsColumnHidden returned wrong results")
	}
}

// TestSortToggling tests the sort cycle used by header links
func TestSortToggling(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"", "DESC"},
		{"DESC", "ASC"},
		{"desc", "ASC"},
		{"ASC", "DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			if got := NextSortToken(tt.current, "ASC", "DESC"); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	q := mustParse(t, "/header?grid=orders&sort:amount=DESC&sort:region=ASC&filter:status=open")
	next := mustParse(t, q.WithSort("amount", NextSortToken(q.Sorts["amount"], "ASC", "DESC")).String())
	if diff := cmp.Diff(map[string]string{"amount": "ASC"}, next.Sorts); diff != "" {
		t.Errorf("Expected single-column sort (-want +got):\n%s", diff)
	}
	if next.Filters["status"] != "open" || next.Grid != "orders" {
		t.Errorf("Expected the rest of the query to be preserved, got %+v", next)
	}
	if len(q.Sorts) != 2 {
		t.Errorf("Expected original query to be untouched, got %v", q.Sorts)
	}

	without := mustParse(t, q.WithoutSort("region").String())
	if diff := cmp.Diff(map[string]string{"amount": "DESC"}, without.Sorts); diff != "" {
		t.Errorf("Unexpected sorts after removal (-want +got):\n%s", diff)
	}
}

// TestFilterURLs tests adding and removing filters
func TestFilterURLs(t *testing.T) {
	q := mustParse(t, "/header?grid=orders&filter:status=open")

	added := mustParse(t, q.WithFilter("region", "north").String())
	if diff := cmp.Diff(map[string]string{"status": "open", "region": "north"}, added.Filters); diff != "" {
		t.Errorf("Unexpected filters after add (-want +got):\n%s", diff)
	}

	removed := mustParse(t, q.WithoutFilter("status").String())
	if diff := cmp.Diff(map[string]string{"status": ""}, removed.Filters); diff != "" {
		t.Errorf("Expected cleared status filter (-want +got):\n%s", diff)
	}
	if !strings.Contains(removed.ToURL(), "filter%3Astatus=") {
		t.Errorf("Expected cleared filter to stay in the URL, got %q", removed.ToURL())
	}
}

// TestColumnToggling tests hiding and showing columns
func TestColumnToggling(t *testing.T) {
	q := mustParse(t, "/header?grid=orders&hidden=a")

	hidden := mustParse(t, q.WithColumnToggled("b").String())
	if diff := cmp.Diff([]string{"a", "b"}, hidden.Hidden); diff != "" {
		t.Errorf("Unexpected hidden columns (-want +got):\n%s", diff)
	}

	shown := mustParse(t, q.WithColumnToggled("a").String())
	if len(shown.Hidden) != 0 {
		t.Errorf("Expected no hidden columns, got %v", shown.Hidden)
	}
}

// TestToURLRoundTrip tests that ToURL keeps the state a handler needs
func TestToURLRoundTrip(t *testing.T) {
	q := mustParse(t, "/header?grid=orders&sort:amount=DESC&filter:status=open%20now&hidden=x")
	back := mustParse(t, q.ToURL())
	if diff := cmp.Diff(q, back); diff != "" {
		t.Errorf("Round trip changed the query (-want +got):\n%s", diff)
	}
	if q.ToSafeURL().String() != q.ToURL() {
		t.Errorf("Expected safe URL %q to equal %q", q.ToSafeURL().String(), q.ToURL())
	}
}
