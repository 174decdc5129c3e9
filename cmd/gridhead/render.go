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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/taxinomia/gridhead/core/definitions"
	"github.com/google/taxinomia/gridhead/core/query"
	"github.com/google/taxinomia/gridhead/core/rendering"
	"github.com/google/taxinomia/gridhead/core/views"
	"github.com/spf13/cobra"
)

// Output formats of the render command
const (
	formatASCII = "ascii"
	formatHTML  = "html"
	formatThead = "thead"
	formatJSON  = "json"
)

type renderParams struct {
	format  string
	sorts   map[string]string
	filters map[string]string
	hidden  []string
}

var configuredRenderParams = renderParams{
	format: formatASCII,
}

var renderCommand = &cobra.Command{
	Use:   "render <path>",
	Short: "Render the header of a grid definition",
	Long: `Render the header of a grid definition file.

The sort, filter and hidden flags take the place of the URL state of a
header request, e.g. --sort id=DESC --filter region=north --hidden notes.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("specify exactly one definition file")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(render(args, &configuredRenderParams, os.Stdout, os.Stderr))
	},
}

func render(args []string, params *renderParams, stdout io.Writer, stderr io.Writer) int {
	g, err := loadDefinition(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	q := &query.Query{
		Path:    "header",
		Grid:    g.Name,
		Sorts:   make(map[string]string),
		Filters: make(map[string]string),
		Hidden:  params.hidden,
	}
	for colName, token := range params.sorts {
		q.Sorts[colName] = token
	}
	for colName, value := range params.filters {
		q.Filters[colName] = value
	}

	vm, err := views.BuildHeaderViewModel(g, q, views.BuildOptions{})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	switch params.format {
	case formatJSON:
		data, err := vm.ToJSON()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
	case formatHTML, formatThead:
		renderer, err := rendering.NewHeaderRenderer()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if params.format == formatThead {
			thead, err := renderer.RenderThead(vm)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			fmt.Fprintln(stdout, thead.String())
			return 0
		}
		if err := renderer.Render(stdout, vm); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	case formatASCII:
		fmt.Fprint(stdout, rendering.ToAscii(vm))
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", params.format)
		return 1
	}
	return 0
}

// loadDefinition reads one definition file with the default loaders
func loadDefinition(path string) (*definitions.Grid, error) {
	manager, err := definitions.NewManager("", 1)
	if err != nil {
		return nil, err
	}
	return manager.LoadFile(path)
}

func init() {
	renderCommand.Flags().StringVarP(&configuredRenderParams.format, "format", "f", formatASCII, "set output format (ascii, html, thead, json)")
	renderCommand.Flags().StringToStringVar(&configuredRenderParams.sorts, "sort", nil, "sort token of a column, as column=token")
	renderCommand.Flags().StringToStringVar(&configuredRenderParams.filters, "filter", nil, "selected filter value of a column, as column=value")
	renderCommand.Flags().StringSliceVar(&configuredRenderParams.hidden, "hidden", nil, "columns to hide")

	RootCommand.AddCommand(renderCommand)
}
