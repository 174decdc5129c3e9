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

	"github.com/google/safehtml"
	"golang.org/x/text/cases"
)

// Query represents the parsed state of a header view URL
type Query struct {
	// Base path (e.g., "/header")
	Path string

	// Core parameters
	Grid    string            // The grid definition being viewed
	Sorts   map[string]string // Current sort tokens (columnName -> token)
	Filters map[string]string // Column filters (columnName -> filterValue)
	Hidden  []string          // Columns hidden by the user, in the order they were hidden
	Format  string            // Output format ("html" or "json"), empty means html
}

// NewQuery creates a Query from a URL
func NewQuery(u *url.URL) *Query {
	state := &Query{
		Path:    u.Path,
		Sorts:   make(map[string]string),
		Filters: make(map[string]string),
	}

	q := u.Query()

	state.Grid = q.Get("grid")
	state.Format = q.Get("format")

	// Extract hidden parameter (format: col1,col2)
	hiddenStr := q.Get("hidden")
	if hiddenStr != "" {
		state.Hidden = strings.Split(hiddenStr, ",")
	} else {
		state.Hidden = []string{}
	}

	// Extract sort and filter parameters (format: sort:columnName=token, filter:columnName=value)
	for key, values := range q {
		if len(values) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(key, "sort:"):
			if values[0] != "" {
				state.Sorts[strings.TrimPrefix(key, "sort:")] = values[0]
			}
		case strings.HasPrefix(key, "filter:"):
			state.Filters[strings.TrimPrefix(key, "filter:")] = values[0]
		}
	}

	return state
}

// Clone creates a deep copy of the Query
func (s *Query) Clone() *Query {
	clone := &Query{
		Path:    s.Path,
		Grid:    s.Grid,
		Sorts:   make(map[string]string, len(s.Sorts)),
		Filters: make(map[string]string, len(s.Filters)),
		Hidden:  make([]string, len(s.Hidden)),
		Format:  s.Format,
	}
	for colName, token := range s.Sorts {
		clone.Sorts[colName] = token
	}
	for colName, value := range s.Filters {
		clone.Filters[colName] = value
	}
	copy(clone.Hidden, s.Hidden)
	return clone
}

// NextSortToken returns the token a click on a column sorted with current
// switches to: unsorted and ascending columns go descending, descending ones
// go ascending.
func NextSortToken(current, upText, downText string) string {
	fold := cases.Fold()
	if current != "" && fold.String(current) == fold.String(downText) {
		return upText
	}
	return downText
}

// WithSort returns a URL sorting by the column only
func (s *Query) WithSort(column, token string) safehtml.URL {
	newState := s.Clone()
	newState.Sorts = map[string]string{column: token}
	return newState.ToSafeURL()
}

// WithoutSort returns a URL with the sort on the column removed
func (s *Query) WithoutSort(column string) safehtml.URL {
	newState := s.Clone()
	delete(newState.Sorts, column)
	return newState.ToSafeURL()
}

// WithFilter returns a URL that filters the column by value
func (s *Query) WithFilter(column, value string) safehtml.URL {
	newState := s.Clone()
	newState.Filters[column] = value
	return newState.ToSafeURL()
}

// WithoutFilter returns a URL with the filter on the column cleared. The
// column stays in the query with an empty value, which overrides a selection
// made by the grid definition.
func (s *Query) WithoutFilter(column string) safehtml.URL {
	newState := s.Clone()
	newState.Filters[column] = ""
	return newState.ToSafeURL()
}

// WithColumnToggled returns a URL with the column visibility toggled
func (s *Query) WithColumnToggled(column string) safehtml.URL {
	newState := s.Clone()
	found := false
	newHidden := make([]string, 0, len(s.Hidden))
	for _, col := range s.Hidden {
		if col == column {
			found = true
		} else {
			newHidden = append(newHidden, col)
		}
	}

	if found {
		newState.Hidden = newHidden
	} else {
		newState.Hidden = append(newHidden, column)
	}

	return newState.ToSafeURL()
}

// WithFormat returns a URL asking for a different output format
func (s *Query) WithFormat(format string) safehtml.URL {
	newState := s.Clone()
	newState.Format = format
	return newState.ToSafeURL()
}

// IsColumnHidden checks if a column is in the hidden columns list
func (s *Query) IsColumnHidden(column string) bool {
	for _, col := range s.Hidden {
		if col == column {
			return true
		}
	}
	return false
}

// ToURL converts the Query back to a URL string
func (s *Query) ToURL() string {
	u := &url.URL{
		Path: s.Path,
	}

	q := u.Query()

	if s.Grid != "" {
		q.Set("grid", s.Grid)
	}

	if len(s.Hidden) > 0 {
		q.Set("hidden", strings.Join(s.Hidden, ","))
	}

	for colName, token := range s.Sorts {
		if token != "" {
			q.Set("sort:"+colName, token)
		}
	}

	// Add filter parameters (format: filter:columnName=value); cleared
	// filters are kept with an empty value
	for colName, filterValue := range s.Filters {
		q.Set("filter:"+colName, filterValue)
	}

	if s.Format != "" {
		q.Set("format", s.Format)
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(s.ToURL())
}
