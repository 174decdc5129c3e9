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

	"github.com/google/taxinomia/gridhead/core/layout"
	"github.com/spf13/cobra"
)

var checkCommand = &cobra.Command{
	Use:   "check <path> [path...]",
	Short: "Check grid definition files",
	Long:  `Check that grid definition files parse and that their column trees can be laid out.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no definition file specified")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(check(args, os.Stdout, os.Stderr))
	},
}

func check(args []string, stdout io.Writer, stderr io.Writer) int {
	failed := 0
	for _, path := range args {
		g, err := loadDefinition(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		m, err := g.BuildColumns()
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		rows := 1
		if g.IsNested() {
			rows = layout.MaxLevel(m) + 1
		}
		fmt.Fprintf(stdout, "%s: grid %s, %d header rows, %d leaf columns\n", path, g.Name, rows, layout.LeafCount(m))
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func init() {
	RootCommand.AddCommand(checkCommand)
}
