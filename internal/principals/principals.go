// Package principals derives the OS users and groups owning the managed
// services' files and processes.
package principals

// Kind distinguishes user records from group records.
type Kind string

const (
	KindUser  Kind = "user"
	KindGroup Kind = "group"
)

// Principal is an OS-level identity. A user principal references the group
// that owns its home; a group principal owns no home and no group.
type Principal struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Home  string `yaml:"home,omitempty"`
	Group string `yaml:"group,omitempty"`
}

// Derive returns the fixed principal set required by the managed services,
// option-independent. One user+group pair exists per service that needs
// isolated filesystem ownership; the relational store runs under its
// distro-managed account and is not re-declared here. Each group precedes
// the user that references it.
func Derive() []Principal {
	return []Principal{
		{Name: "modelserve", Kind: KindGroup},
		{Name: "modelserve", Kind: KindUser, Home: "/var/lib/modelserve", Group: "modelserve"},
		{Name: "vectorstore", Kind: KindGroup},
		{Name: "vectorstore", Kind: KindUser, Home: "/var/lib/vectorstore", Group: "vectorstore"},
		{Name: "assistant", Kind: KindGroup},
		{Name: "assistant", Kind: KindUser, Home: "/var/lib/assistant", Group: "assistant"},
	}
}
