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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const peopleYAML = `
title: People
columns:
  - key: group
    text: Group1
    columns:
      - key: a
        text: A
        sorting: ""
      - key: b
        text: B
  - key: solo
    text: Solo
    filter: {}
`

const brokenYAML = `
nested: false
columns:
  - key: group
    columns:
      - key: child
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.yaml", peopleYAML)

	t.Run("ascii", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := render([]string{path}, &renderParams{format: formatASCII}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
		}
		want := "+------+----+\n" +
			"|Group1|Solo|\n" +
			"+-+----+    |\n" +
			"|A|B   |    |\n" +
			"+-+----+----+\n"
		if diff := cmp.Diff(want, stdout.String()); diff != "" {
			t.Errorf("render mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json with state", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		params := &renderParams{
			format:  formatJSON,
			sorts:   map[string]string{"a": "asc"},
			filters: map[string]string{"solo": "x"},
			hidden:  []string{"b"},
		}
		if code := render([]string{path}, params, &stdout, &stderr); code != 0 {
			t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
		}
		out := stdout.String()
		for _, want := range []string{`"sortData"`, `"ASC"`, `"x"`} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected output to contain %s, got:\n%s", want, out)
			}
		}
	})

	t.Run("filter flag replaces definition selection", func(t *testing.T) {
		defaults := writeFile(t, dir, "defaults.yaml", "columns:\n  - key: region\n    filter:\n      selected: north\n")
		var stdout, stderr bytes.Buffer
		params := &renderParams{format: formatJSON, filters: map[string]string{"region": "south"}}
		if code := render([]string{defaults}, params, &stdout, &stderr); code != 0 {
			t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
		}
		out := stdout.String()
		if !strings.Contains(out, `"south"`) || strings.Contains(out, `"north"`) {
			t.Errorf("Expected only the flag selection, got:\n%s", out)
		}
	})

	t.Run("thead", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := render([]string{path}, &renderParams{format: formatThead}, &stdout, &stderr); code != 0 {
			t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
		}
		if !strings.HasPrefix(stdout.String(), `<thead data-gridhead="people">`) {
			t.Errorf("Expected thead, got:\n%s", stdout.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := render([]string{path}, &renderParams{format: "xml"}, &stdout, &stderr); code != 1 {
			t.Errorf("Expected exit 1, got %d", code)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := render([]string{filepath.Join(dir, "missing.yaml")}, &renderParams{format: formatASCII}, &stdout, &stderr); code != 1 {
			t.Errorf("Expected exit 1, got %d", code)
		}
		if stderr.Len() == 0 {
			t.Error("Expected an error message")
		}
	})
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "people.yaml", peopleYAML)
	broken := writeFile(t, dir, "broken.yaml", brokenYAML)

	var stdout, stderr bytes.Buffer
	if code := check([]string{good}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "grid people, 2 header rows, 3 leaf columns") {
		t.Errorf("Unexpected summary: %s", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := check([]string{good, broken}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid column topology") {
		t.Errorf("Expected topology error, got: %s", stderr.String())
	}
}
