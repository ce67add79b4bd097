// Package manifest exposes the packaged description of the HTTP endpoints.
package manifest

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yml
var endpointsYAML []byte

// Endpoint documents one route. Example payloads are free-form.
type Endpoint struct {
	Description     string   `yaml:"description" json:"description"`
	AuthRequired    bool     `yaml:"authRequired,omitempty" json:"authRequired,omitempty"`
	Queries         []string `yaml:"queries,omitempty" json:"queries,omitempty"`
	ExampleRequest  any      `yaml:"exampleRequest,omitempty" json:"exampleRequest,omitempty"`
	ExampleResponse any      `yaml:"exampleResponse,omitempty" json:"exampleResponse,omitempty"`
}

// Manifest maps "METHOD /path" to its documentation.
type Manifest map[string]Endpoint

// Load parses the packaged manifest.
func Load() (Manifest, error) {
	return Parse(endpointsYAML)
}

// Parse decodes a manifest document.
func Parse(b []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse endpoints manifest: %w", err)
	}
	return m, nil
}
