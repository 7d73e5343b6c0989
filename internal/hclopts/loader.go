// Package hclopts loads raw option values from an HCL file. The file is a
// flat attribute body; each attribute must be a literal expression, since
// options do not reference one another.
package hclopts

import (
	"context"
	"fmt"
	"os"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/ctxlog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// LoadFile parses the HCL file at path and evaluates its attributes into
// raw cty values keyed by option name. Type checking happens later in the
// options package; this layer only rejects unparseable syntax.
func LoadFile(ctx context.Context, path string) (map[string]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("options file %s must contain only attributes: %w", path, diags)
	}

	raw := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate option %q: %w", name, diags)
		}
		raw[name] = val
	}

	logger.Debug("Options file loaded.", "path", path, "attributes", len(raw))
	return raw, nil
}
