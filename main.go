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
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/google/taxinomia/gridhead/core/server"
	"github.com/google/taxinomia/gridhead/demo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8098", "address to listen on")
	defs := flag.String("defs", "", "directory of grid definition files; the built-in demo grids are served when empty")
	flag.Parse()

	metrics := server.NewMetrics()
	srv, manager, err := demo.SetupDemoServer(*defs, metrics)
	if err != nil {
		log.Fatalf("Failed to set up server: %v", err)
	}

	// Drop cached definitions when their files change
	go func() {
		if err := manager.Watch(context.Background()); err != nil {
			log.Printf("Definition watcher stopped: %v", err)
		}
	}()

	// Header handler
	http.HandleFunc("/header", func(w http.ResponseWriter, r *http.Request) {
		result := srv.HandleHeaderRequest(w, r.URL, w.Header().Set)
		if result == nil {
			return
		}
		if result.Error != nil {
			// Has no effect on the status if the renderer already wrote to the response
			log.Printf("Header request error: %v", result.Error)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Error(w, result.Message, result.StatusCode)
	})

	// Prometheus metrics
	http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	// Landing page with links to grids
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := srv.HandleLandingRequest(w, r.URL, w.Header().Set); err != nil {
			log.Printf("Landing page rendering error: %v", err)
		}
	})

	fmt.Printf("Server starting on http://%s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
