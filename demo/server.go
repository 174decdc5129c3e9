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

package demo

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/taxinomia/gridhead/core/definitions"
	"github.com/google/taxinomia/gridhead/core/headers"
	"github.com/google/taxinomia/gridhead/core/server"
)

//go:embed grids/*
var gridFS embed.FS

// CacheSize is the number of file-backed grids kept parsed in memory
const CacheSize = 64

// SetupDemoServer creates and configures a server. Grids are read from dir;
// the built-in demo grids are used when dir is empty.
func SetupDemoServer(dir string, metrics *server.Metrics) (*server.Server, *definitions.Manager, error) {
	fmt.Println("Starting Gridhead...")

	manager, err := definitions.NewManager(dir, CacheSize)
	if err != nil {
		return nil, nil, err
	}

	if dir == "" {
		fmt.Println("=== Registering Demo Grids ===")
		if err := RegisterGrids(manager); err != nil {
			return nil, nil, err
		}
		fmt.Println("=== Demo Grids Registered ===")
	} else {
		fmt.Printf("Serving grid definitions from %s\n", dir)
	}

	srv, err := server.NewServer(manager, metrics)
	if err != nil {
		return nil, nil, err
	}
	srv.SetRenderers("orders", Renderers())

	fmt.Printf("Available grids: %v\n", manager.Names())
	return srv, manager, nil
}

// RegisterGrids loads the embedded demo grids into manager
func RegisterGrids(manager *definitions.Manager) error {
	entries, err := fs.ReadDir(gridFS, "grids")
	if err != nil {
		return fmt.Errorf("failed to list demo grids: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("grids", entry.Name())
		data, err := gridFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		g, err := manager.LoadData(name, data)
		if err != nil {
			return err
		}
		if err := manager.RegisterGrid(g); err != nil {
			return err
		}
		fmt.Printf("Registered grid %s (%d top-level columns)\n", g.Name, len(g.Columns))
	}
	return nil
}

var statusTemplate = template.Must(template.New("status").Parse(
	`<span class="status-header" title="{{.}}">{{.}} &#9679;</span>`))

// Renderers returns the header render functions of the orders grid
func Renderers() map[string]headers.HeaderRenderFunc {
	return map[string]headers.HeaderRenderFunc{
		"status": func(key string) safehtml.HTML {
			html, err := statusTemplate.ExecuteToHTML("Status")
			if err != nil {
				return safehtml.HTMLEscaped(key)
			}
			return html
		},
	}
}
