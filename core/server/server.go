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

package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/taxinomia/gridhead/core/columns"
	"github.com/google/taxinomia/gridhead/core/definitions"
	"github.com/google/taxinomia/gridhead/core/headers"
	"github.com/google/taxinomia/gridhead/core/layout"
	"github.com/google/taxinomia/gridhead/core/query"
	"github.com/google/taxinomia/gridhead/core/rendering"
	"github.com/google/taxinomia/gridhead/core/views"
)

// Output formats of a header request
const (
	FormatHTML  = "html"
	FormatThead = "thead"
	FormatJSON  = "json"
	FormatASCII = "ascii"
)

// Server represents the application server with all its dependencies
type Server struct {
	manager  *definitions.Manager
	renderer *rendering.HeaderRenderer
	metrics  *Metrics

	mu        sync.RWMutex
	renderers map[string]map[string]headers.HeaderRenderFunc // grid name -> column key -> render func

	// Landing page settings
	Title    string
	Subtitle string
}

// NewServer creates a new server serving the grids of manager
func NewServer(manager *definitions.Manager, metrics *Metrics) (*Server, error) {
	renderer, err := rendering.NewHeaderRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &Server{
		manager:   manager,
		renderer:  renderer,
		metrics:   metrics,
		renderers: make(map[string]map[string]headers.HeaderRenderFunc),
		Title:     "Grid Headers",
		Subtitle:  "Nested header layouts with sorting, filtering and column visibility",
	}, nil
}

// SetRenderers registers functions producing the header content of columns of a grid
func (s *Server) SetRenderers(grid string, renderers map[string]headers.HeaderRenderFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderers[grid] = renderers
}

// HeaderHandlerResult represents the result of handling a header request
type HeaderHandlerResult struct {
	Error      error
	StatusCode int
	Message    string
}

// TimingCollector collects timing measurements for various operations
type TimingCollector struct {
	entries []views.TimingEntry
	start   time.Time
}

// NewTimingCollector creates a new timing collector
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{start: time.Now()}
}

// Record records a timing entry
func (tc *TimingCollector) Record(operation string, duration time.Duration) {
	tc.entries = append(tc.entries, views.TimingEntry{
		Operation:  operation,
		DurationMs: fmt.Sprintf("%.2f", float64(duration.Microseconds())/1000.0),
	})
}

// GetEntries returns all timing entries
func (tc *TimingCollector) GetEntries() []views.TimingEntry {
	return tc.entries
}

// TotalMs returns total elapsed time in milliseconds as formatted string
func (tc *TimingCollector) TotalMs() string {
	return fmt.Sprintf("%.2f", float64(time.Since(tc.start).Microseconds())/1000.0)
}

// HandleHeaderRequest processes a header request and writes the response
// Returns an error result if the request is invalid, nil on success
func (s *Server) HandleHeaderRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *HeaderHandlerResult {
	q := query.NewQuery(requestURL)
	format := q.Format
	if format == "" {
		format = FormatHTML
	}

	gridLabel := "unknown"
	result := s.handleHeader(w, q, format, setHeader, &gridLabel)

	code := 200
	if result != nil {
		code = result.StatusCode
		if result.Error != nil {
			code = 500
		}
	}
	s.metrics.requests.WithLabelValues(gridLabel, format, strconv.Itoa(code)).Inc()
	return result
}

func (s *Server) handleHeader(w io.Writer, q *query.Query, format string, setHeader func(key, value string), gridLabel *string) *HeaderHandlerResult {
	timing := NewTimingCollector()

	// Validate grid parameter
	if q.Grid == "" {
		return &HeaderHandlerResult{StatusCode: 400, Message: "Grid parameter is required"}
	}
	switch format {
	case FormatHTML, FormatThead, FormatJSON, FormatASCII:
	default:
		return &HeaderHandlerResult{StatusCode: 400, Message: fmt.Sprintf("Unknown format '%s'", format)}
	}

	// Get the grid definition
	loadStart := time.Now()
	g, err := s.manager.Get(q.Grid)
	timing.Record("Load Definition", time.Since(loadStart))
	if err != nil {
		return errorResult(err)
	}
	*gridLabel = g.Name

	s.mu.RLock()
	renderers := s.renderers[g.Name]
	s.mu.RUnlock()

	// Lay out the header and resolve its cells
	buildStart := time.Now()
	vm, err := views.BuildHeaderViewModel(g, q, views.BuildOptions{Renderers: renderers})
	buildDuration := time.Since(buildStart)
	timing.Record("Build Header", buildDuration)
	if err != nil {
		return errorResult(err)
	}
	s.metrics.buildDuration.WithLabelValues(g.Name).Observe(buildDuration.Seconds())
	s.metrics.headerRows.WithLabelValues(g.Name).Set(float64(len(vm.Rows)))

	// Set timing information
	vm.TotalMs = timing.TotalMs()
	vm.Timings = timing.GetEntries()

	switch format {
	case FormatJSON:
		data, err := vm.ToJSON()
		if err != nil {
			return &HeaderHandlerResult{Error: err}
		}
		setHeader("Content-Type", "application/json")
		if _, err := w.Write(data); err != nil {
			return &HeaderHandlerResult{Error: err}
		}
	case FormatASCII:
		setHeader("Content-Type", "text/plain; charset=utf-8")
		if _, err := io.WriteString(w, rendering.ToAscii(vm)); err != nil {
			return &HeaderHandlerResult{Error: err}
		}
	case FormatThead:
		thead, err := s.renderer.RenderThead(vm)
		if err != nil {
			log.Printf("Template rendering error: %v", err)
			return &HeaderHandlerResult{Error: err}
		}
		setHeader("Content-Type", "text/html; charset=utf-8")
		if _, err := io.WriteString(w, thead.String()); err != nil {
			return &HeaderHandlerResult{Error: err}
		}
	default:
		setHeader("Content-Type", "text/html; charset=utf-8")
		if err := s.renderer.Render(w, vm); err != nil {
			log.Printf("Template rendering error: %v", err)
			return &HeaderHandlerResult{Error: err}
		}
	}
	return nil
}

// errorResult maps definition and layout errors to a status code
func errorResult(err error) *HeaderHandlerResult {
	switch {
	case errors.Is(err, definitions.ErrGridNotFound):
		return &HeaderHandlerResult{StatusCode: 404, Message: err.Error()}
	case errors.Is(err, columns.ErrInvalidTopology), errors.Is(err, definitions.ErrUnknownFormat),
		errors.Is(err, definitions.ErrNameMismatch):
		return &HeaderHandlerResult{StatusCode: 400, Message: err.Error()}
	}
	log.Printf("Failed to build header: %v", err)
	return &HeaderHandlerResult{Error: err}
}

// HandleLandingRequest processes the landing page request
func (s *Server) HandleLandingRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) error {
	setHeader("Content-Type", "text/html; charset=utf-8")

	vm := views.LandingViewModel{
		Title:    s.Title,
		Subtitle: s.Subtitle,
	}
	for _, name := range s.manager.Names() {
		g, err := s.manager.Get(name)
		if err != nil {
			log.Printf("Skipping grid %s: %v", name, err)
			continue
		}
		m, err := g.BuildColumns()
		if err != nil {
			log.Printf("Skipping grid %s: %v", name, err)
			continue
		}
		rows := 1
		if g.IsNested() {
			rows = layout.MaxLevel(m) + 1
		}
		q := &query.Query{Path: "header", Grid: g.Name}
		vm.Grids = append(vm.Grids, views.GridInfo{
			Name:        g.Name,
			Title:       g.Title,
			URL:         q.ToSafeURL(),
			ColumnCount: layout.LeafCount(m),
			RowCount:    rows,
		})
	}

	if err := s.renderer.RenderLanding(w, vm); err != nil {
		log.Printf("Landing page rendering error: %v", err)
		return err
	}
	return nil
}
