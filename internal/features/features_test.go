package features

import (
	"context"
	"testing"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func validated(t *testing.T, raw map[string]cty.Value) *options.Set {
	t.Helper()
	set, _, err := options.Validate(context.Background(), raw)
	require.NoError(t, err)
	return set
}

func TestResolveWithoutGPU(t *testing.T) {
	flags := Resolve(validated(t, nil))

	assert.True(t, Enabled(flags, Virtualization))
	assert.False(t, Enabled(flags, HardwareGPU))
	assert.False(t, Enabled(flags, VMGPU))
}

func TestGPUFlagTogglesAtomically(t *testing.T) {
	off := Resolve(validated(t, nil))
	on := Resolve(validated(t, map[string]cty.Value{options.GPU: cty.True}))

	require.Len(t, on, len(off))
	for i := range on {
		if on[i].Name == HardwareGPU || on[i].Name == VMGPU {
			assert.True(t, on[i].Enabled)
			assert.False(t, off[i].Enabled)
			continue
		}
		// Everything else must be untouched by the gpu option.
		assert.Equal(t, off[i], on[i])
	}

	// The two GPU entries are never independently toggled.
	assert.Equal(t, Enabled(on, HardwareGPU), Enabled(on, VMGPU))
	assert.Equal(t, Enabled(off, HardwareGPU), Enabled(off, VMGPU))
}

func TestResolveIsDeterministic(t *testing.T) {
	set := validated(t, map[string]cty.Value{options.GPU: cty.True})
	assert.Equal(t, Resolve(set), Resolve(set))
}

func TestEnabledUnknownName(t *testing.T) {
	assert.False(t, Enabled(Resolve(validated(t, nil)), "dne"))
}
