// Package options declares the configuration surface of the stack and
// validates user-supplied values against it.
//
// Every option carries a cty type, a default, and a description. Validation
// produces an immutable Set: supplied values are type-checked, absent values
// fall back to their defaults, and the result is the single input every
// downstream deriver consumes. The Set is never mutated after Validate
// returns, which is what makes the composition pipeline referentially
// transparent.
package options
