package options

import "fmt"

// TypeMismatchError reports a supplied option value that does not satisfy
// the option's declared type.
type TypeMismatchError struct {
	Option string
	Want   string
	Got    string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q: expected %s, got %s", e.Option, e.Want, e.Got)
}

// UnknownOptionError reports a supplied value for an option that is not
// declared in the schema.
type UnknownOptionError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}
