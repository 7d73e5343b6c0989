// Package features resolves boolean option flags into the enabled/disabled
// hardware and virtualization feature set.
package features

import "github.com/dataO1/ai-coding-assistant-sub001/internal/options"

// Feature names.
const (
	Virtualization = "virtualization"
	HardwareGPU    = "hardware-gpu"
	VMGPU          = "vm-gpu"
)

// Flag is a resolved feature: a name and its enabled state.
type Flag struct {
	Name        string `yaml:"name"`
	Enabled     bool   `yaml:"enabled"`
	Description string `yaml:"description"`
}

// Resolve computes the feature set from the validated options. The two
// GPU entries are both derived from the single gpu option here and nowhere
// else: the VM runtime's GPU support is useless without the host driver,
// so the pair toggles atomically and no mixed state is representable.
func Resolve(opts *options.Set) []Flag {
	gpu := opts.Bool(options.GPU)
	return []Flag{
		{
			Name:        Virtualization,
			Enabled:     true,
			Description: "Workspace VM runtime.",
		},
		{
			Name:        HardwareGPU,
			Enabled:     gpu,
			Description: "Host GPU driver and device passthrough.",
		},
		{
			Name:        VMGPU,
			Enabled:     gpu,
			Description: "GPU support in the workspace VM runtime.",
		},
	}
}

// Enabled reports whether the named flag is enabled in the resolved set.
// Unknown names report false.
func Enabled(flags []Flag, name string) bool {
	for _, f := range flags {
		if f.Name == name {
			return f.Enabled
		}
	}
	return false
}
