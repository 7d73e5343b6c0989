package options

// WarningKind classifies a non-fatal validation signal.
type WarningKind string

// WeakSecretFallback is raised when the secret_key option resolves to the
// empty string and the documented insecure default is substituted. It is
// the only warning-class condition; composition still succeeds.
const WeakSecretFallback WarningKind = "weak-secret-fallback"

// Warning is a caller-visible, non-fatal validation signal.
type Warning struct {
	Kind   WarningKind `yaml:"kind"`
	Option string      `yaml:"option"`
	Detail string      `yaml:"detail"`
}
