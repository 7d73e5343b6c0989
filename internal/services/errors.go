package services

import "fmt"

// DependencyReferenceError reports a service referencing a name that is
// neither a declared service, a known external unit, nor a declared
// principal.
type DependencyReferenceError struct {
	Service string
	Ref     string
}

// Error implements the error interface.
func (e *DependencyReferenceError) Error() string {
	return fmt.Sprintf("service %q references undeclared name %q", e.Service, e.Ref)
}

// DuplicateNameError reports two entities sharing a name that must be
// unique within its kind.
type DuplicateNameError struct {
	Kind string
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate %s name %q", e.Kind, e.Name)
}
