// Package compose is the module assembler: it runs option validation, then
// each deriver against the validated set, and merges the outputs into the
// final resource graph. Composition is a pure function of the raw option
// values; a failure in any stage aborts with the originating error and no
// partial graph is ever returned.
package compose

import (
	"context"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/ctxlog"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/features"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/mounts"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/options"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/principals"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/resource"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/services"
	"github.com/zclconf/go-cty/cty"
)

// Compose transforms raw option values into the complete resource graph.
// Warnings accompany a successful graph; an error means no graph at all.
func Compose(ctx context.Context, raw map[string]cty.Value) (*resource.Graph, []options.Warning, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compose: starting composition.")

	opts, warnings, err := options.Validate(ctx, raw)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Compose: options validated.")

	prins := principals.Derive()
	flags := features.Resolve(opts)
	specs := mounts.Transform(opts.StringList(options.WorkspacePaths))
	logger.Debug("Compose: principals, features, and mounts derived.",
		"principals", len(prins), "features", len(flags), "mounts", len(specs))

	svcs, err := services.Build(ctx, opts, prins, flags)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Compose: service graph built.", "services", len(svcs))

	graph := &resource.Graph{
		Principals: prins,
		Features:   flags,
		Services:   svcs,
		Mounts:     specs,
		Packages:   resource.Packages(),
	}

	logger.Debug("Compose: composition successful.")
	return graph, warnings, nil
}
