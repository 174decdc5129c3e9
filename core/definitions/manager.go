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

package definitions

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of file-backed grids kept in memory.
const DefaultCacheSize = 64

// Manager resolves grid names to definitions. Registered grids are always
// available; file-backed grids are loaded lazily from the definitions
// directory and cached.
type Manager struct {
	mu sync.RWMutex

	// Registered loaders indexed by file extension
	loaders map[string]Loader

	// Programmatically registered grids indexed by name
	registered map[string]*Grid

	// Grids loaded from dir, indexed by name
	cache *lru.Cache[string, *Grid]

	// Directory holding definition files, empty when there is none
	dir string
}

// NewManager creates a manager reading definitions from dir with the YAML,
// HCL and CSV loaders registered. dir may be empty.
func NewManager(dir string, cacheSize int) (*Manager, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *Grid](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create definition cache: %w", err)
	}
	m := &Manager{
		loaders:    make(map[string]Loader),
		registered: make(map[string]*Grid),
		cache:      cache,
		dir:        dir,
	}
	m.RegisterLoader(YAMLLoader{})
	m.RegisterLoader(HCLLoader{})
	m.RegisterLoader(CSVLoader{})
	return m, nil
}

// RegisterLoader registers a loader for its extensions, replacing any loader
// registered for the same extension.
func (m *Manager) RegisterLoader(loader Loader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ext := range loader.Extensions() {
		m.loaders[strings.ToLower(ext)] = loader
	}
}

// RegisterGrid makes a grid available under its name.
func (m *Manager) RegisterGrid(g *Grid) error {
	if err := g.Check(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registered[g.Name] = g
	return nil
}

// Get returns the grid called name. A definition file may only set a name
// equal to its own base name, so every grid is reachable under g.Name.
func (m *Manager) Get(name string) (*Grid, error) {
	m.mu.RLock()
	g, ok := m.registered[name]
	m.mu.RUnlock()
	if ok {
		return g, nil
	}

	if g, ok := m.cache.Get(name); ok {
		return g, nil
	}

	path, err := m.find(name)
	if err != nil {
		return nil, err
	}
	g, err = m.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if g.Name != name {
		return nil, fmt.Errorf("%w: %s declares %q", ErrNameMismatch, path, g.Name)
	}
	m.cache.Add(name, g)
	return g, nil
}

// find locates the definition file of a grid in the definitions directory.
func (m *Manager) find(name string) (string, error) {
	if m.dir == "" || name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrGridNotFound, name)
	}

	m.mu.RLock()
	exts := make([]string, 0, len(m.loaders))
	for ext := range m.loaders {
		exts = append(exts, ext)
	}
	m.mu.RUnlock()
	sort.Strings(exts)

	for _, ext := range exts {
		path := filepath.Join(m.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrGridNotFound, name)
}

// LoadFile reads and checks a definition file. The grid name defaults to the
// file name without extension.
func (m *Manager) LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return m.LoadData(path, data)
}

// LoadData parses and checks definition data. The extension of path selects
// the loader and its base name is the default grid name.
func (m *Manager) LoadData(path string, data []byte) (*Grid, error) {
	ext := strings.ToLower(filepath.Ext(path))
	m.mu.RLock()
	loader, ok := m.loaders[ext]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	g, err := loader.Load(name, data)
	if err != nil {
		return nil, err
	}
	if err := g.Check(); err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return g, nil
}

// Names returns the names of all registered grids and definition files.
func (m *Manager) Names() []string {
	seen := make(map[string]bool)

	m.mu.RLock()
	for name := range m.registered {
		seen[name] = true
	}
	loaders := make(map[string]bool, len(m.loaders))
	for ext := range m.loaders {
		loaders[ext] = true
	}
	m.mu.RUnlock()

	if m.dir != "" {
		entries, err := os.ReadDir(m.dir)
		if err != nil {
			log.Printf("Failed to list definitions in %s: %v", m.dir, err)
		}
		for _, entry := range entries {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if entry.IsDir() || !loaders[ext] {
				continue
			}
			seen[strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invalidate drops a cached grid so the next Get reloads it.
func (m *Manager) Invalidate(name string) {
	m.cache.Remove(name)
}

// Watch evicts cached grids whose files change until ctx is done.
func (m *Manager) Watch(ctx context.Context) error {
	if m.dir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(m.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", m.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			base := filepath.Base(event.Name)
			name := strings.TrimSuffix(base, filepath.Ext(base))
			if m.cache.Remove(name) {
				log.Printf("Definition %s changed (%s), evicted from cache", name, event.Op)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Definition watcher error: %v", err)
		}
	}
}
