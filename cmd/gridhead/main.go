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

// Command gridhead lays out grid header definitions from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// RootCommand is the base CLI command that all subcommands are added to
var RootCommand = &cobra.Command{
	Use:          "gridhead",
	Short:        "Grid header layout tool",
	Long:         "Lay out and check nested data grid headers described in YAML, JSON or HCL files.",
	SilenceUsage: true,
}

func main() {
	if err := RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
