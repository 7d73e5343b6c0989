package resource

// Packages returns the flat, option-independent list of globally installed
// packages. Static data exposed as-is; the composition engine does not
// interpret it.
func Packages() []string {
	return []string{
		"git",
		"ripgrep",
		"fd",
		"jq",
		"sqlite",
		"python3",
		"nodejs",
	}
}
