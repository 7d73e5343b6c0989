// Package resource defines the root resource graph emitted by the
// composition engine, along with its supervisor-facing encoding.
package resource

import (
	"github.com/dataO1/ai-coding-assistant-sub001/internal/features"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/mounts"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/principals"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/services"
)

// Graph is the root aggregate: everything the external supervisor needs to
// provision and run the stack. It is derived fresh on every composition
// run and never mutated afterwards.
type Graph struct {
	Principals []principals.Principal `yaml:"principals"`
	Features   []features.Flag        `yaml:"features"`
	Services   []services.Service     `yaml:"services"`
	Mounts     []mounts.Spec          `yaml:"mounts"`
	Packages   []string               `yaml:"packages"`
}
