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

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/taxinomia/gridhead/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// HeaderRenderer handles rendering of header view models to HTML
type HeaderRenderer struct {
	headerTemplate  *template.Template
	landingTemplate *template.Template
}

// NewHeaderRenderer creates a new header renderer
func NewHeaderRenderer() (*HeaderRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	// Parse the header page template; the thead is a shared sub-template
	headerTemplate, err := template.New("header.html").ParseFS(trustedFS, "templates/header.html", "templates/thead.html")
	if err != nil {
		return nil, err
	}

	// Parse the landing page template
	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/landing.html")
	if err != nil {
		return nil, err
	}

	return &HeaderRenderer{
		headerTemplate:  headerTemplate,
		landingTemplate: landingTemplate,
	}, nil
}

// Render renders a HeaderViewModel as a full page to the provided writer
func (r *HeaderRenderer) Render(w io.Writer, vm views.HeaderViewModel) error {
	return r.headerTemplate.Execute(w, vm)
}

// RenderThead renders only the thead element of a HeaderViewModel
func (r *HeaderRenderer) RenderThead(vm views.HeaderViewModel) (safehtml.HTML, error) {
	return r.headerTemplate.ExecuteTemplateToHTML("thead", vm)
}

// RenderLanding renders a LandingViewModel to the provided writer
func (r *HeaderRenderer) RenderLanding(w io.Writer, vm views.LandingViewModel) error {
	return r.landingTemplate.Execute(w, vm)
}
