package options

import (
	"context"
	"fmt"
	"sort"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Set is the validated, immutable option set. Every value is present and
// satisfies its declared type; absent inputs have been replaced by their
// defaults and the secret fallback has been applied.
type Set struct {
	values map[string]cty.Value
}

// Validate checks raw values against the declared schema and produces the
// validated Set. Unknown names and type mismatches abort with a typed error.
// An empty secret_key is replaced by InsecureSecretKey and reported as a
// WeakSecretFallback warning rather than a failure.
func Validate(ctx context.Context, raw map[string]cty.Value) (*Set, []Warning, error) {
	logger := ctxlog.FromContext(ctx)
	byName := schemaByName()

	// Reject undeclared names first, in stable order for reproducible errors.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return nil, nil, &UnknownOptionError{Name: name}
		}
	}

	values := make(map[string]cty.Value, len(byName))
	for _, opt := range Schema() {
		val, supplied := raw[opt.Name]
		if !supplied || val.IsNull() {
			values[opt.Name] = opt.Default
			continue
		}

		// Primitive options are checked strictly: cty's conversions would
		// accept a string for a bool, which must fail here instead. Only
		// collection options go through conversion, because HCL list
		// literals evaluate to tuples.
		if opt.Type.IsPrimitiveType() {
			if !val.Type().Equals(opt.Type) {
				return nil, nil, &TypeMismatchError{
					Option: opt.Name,
					Want:   opt.Type.FriendlyName(),
					Got:    val.Type().FriendlyName(),
				}
			}
			values[opt.Name] = val
			continue
		}

		converted, err := convert.Convert(val, opt.Type)
		if err != nil {
			return nil, nil, &TypeMismatchError{
				Option: opt.Name,
				Want:   opt.Type.FriendlyName(),
				Got:    val.Type().FriendlyName(),
			}
		}
		values[opt.Name] = converted
	}

	var warnings []Warning
	if values[SecretKey].AsString() == "" {
		values[SecretKey] = cty.StringVal(InsecureSecretKey)
		w := Warning{
			Kind:   WeakSecretFallback,
			Option: SecretKey,
			Detail: "secret_key is empty; substituting the documented insecure default",
		}
		warnings = append(warnings, w)
		logger.Warn("Empty secret_key replaced with the documented insecure default. Set a real secret before exposing this deployment.",
			"option", SecretKey)
	}

	logger.Debug("Option validation passed.", "options", len(values), "warnings", len(warnings))
	return &Set{values: values}, warnings, nil
}

// lookup fetches a validated value. An undeclared name is a programmer
// error, not user input, so it panics.
func (s *Set) lookup(name string) cty.Value {
	val, ok := s.values[name]
	if !ok {
		panic(fmt.Sprintf("options: %q is not a declared option", name))
	}
	return val
}

// Bool returns the validated value of a boolean option.
func (s *Set) Bool(name string) bool {
	return s.lookup(name).True()
}

// String returns the validated value of a string option.
func (s *Set) String(name string) string {
	return s.lookup(name).AsString()
}

// StringList returns the validated value of a list(string) option as a
// fresh slice, preserving input order.
func (s *Set) StringList(name string) []string {
	val := s.lookup(name)
	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		out = append(out, elem.AsString())
	}
	return out
}
