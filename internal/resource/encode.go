package resource

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeYAML writes the graph to w as YAML, the format the external
// supervisor consumes. Field order follows the struct declaration, so equal
// graphs encode to byte-identical documents.
func EncodeYAML(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("failed to encode resource graph: %w", err)
	}
	return enc.Close()
}
