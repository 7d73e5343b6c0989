// Package mounts maps the ordered workspace_paths option into indexed,
// read-only bind mount specifications.
package mounts

import "fmt"

// WorkspaceRoot is the prefix of every generated mount target. Target i is
// WorkspaceRoot + "-" + i.
const WorkspaceRoot = "/workspace"

// Mode is a mount access mode.
type Mode string

const (
	ReadOnly  Mode = "ro"
	ReadWrite Mode = "rw"
)

// Spec is a single bind mount: host Source exposed at Target.
type Spec struct {
	Index  int    `yaml:"index"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Mode   Mode   `yaml:"mode"`
}

// Transform maps an ordered list of host paths to mount specs. Input i
// becomes the spec at index i; the target is a function of the index alone,
// the source is copied verbatim, and the mode is always read-only. An empty
// or nil input yields an empty output.
func Transform(paths []string) []Spec {
	specs := make([]Spec, 0, len(paths))
	for i, path := range paths {
		specs = append(specs, Spec{
			Index:  i,
			Source: path,
			Target: fmt.Sprintf("%s-%d", WorkspaceRoot, i),
			Mode:   ReadOnly,
		})
	}
	return specs
}
