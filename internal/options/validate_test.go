package options

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestSchemaDefaultsSatisfyDeclaredTypes(t *testing.T) {
	for _, opt := range Schema() {
		assert.True(t, opt.Default.Type().Equals(opt.Type),
			"option %q: default type %s does not match declared type %s",
			opt.Name, opt.Default.Type().FriendlyName(), opt.Type.FriendlyName())
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	set, warnings, err := Validate(context.Background(), nil)
	require.NoError(t, err)

	assert.False(t, set.Bool(GPU))
	assert.Equal(t, "admin", set.String(DashboardPassword))
	assert.Equal(t, "llama3:8b", set.String(ChatModel))
	assert.Equal(t, "codellama:7b-code", set.String(CompletionModel))
	assert.Equal(t, "nomic-embed-text", set.String(EmbeddingModel))
	assert.Equal(t, "bge-reranker-base", set.String(RerankModel))
	assert.Empty(t, set.StringList(WorkspacePaths))

	// The default secret_key is empty, so the fallback applies.
	require.Len(t, warnings, 1)
	assert.Equal(t, WeakSecretFallback, warnings[0].Kind)
	assert.Equal(t, SecretKey, warnings[0].Option)
	assert.Equal(t, InsecureSecretKey, set.String(SecretKey))
}

func TestValidateSuppliedValues(t *testing.T) {
	raw := map[string]cty.Value{
		GPU:            cty.True,
		SecretKey:      cty.StringVal("a-real-secret"),
		WorkspacePaths: cty.ListVal([]cty.Value{cty.StringVal("/a"), cty.StringVal("/b")}),
	}

	set, warnings, err := Validate(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, warnings, "a non-empty secret must pass through without a warning")

	assert.True(t, set.Bool(GPU))
	assert.Equal(t, "a-real-secret", set.String(SecretKey))
	assert.Equal(t, []string{"/a", "/b"}, set.StringList(WorkspacePaths))
}

func TestValidateAcceptsTupleForListOption(t *testing.T) {
	// HCL list literals evaluate to tuples; conversion to list(string)
	// must succeed.
	raw := map[string]cty.Value{
		WorkspacePaths: cty.TupleVal([]cty.Value{cty.StringVal("/x")}),
	}

	set, _, err := Validate(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"/x"}, set.StringList(WorkspacePaths))
}

func TestValidateTypeMismatch(t *testing.T) {
	raw := map[string]cty.Value{
		GPU: cty.NumberIntVal(5),
	}

	set, warnings, err := Validate(context.Background(), raw)
	assert.Nil(t, set)
	assert.Nil(t, warnings)

	var tme *TypeMismatchError
	require.ErrorAs(t, err, &tme)
	assert.Equal(t, GPU, tme.Option)
	assert.Equal(t, "bool", tme.Want)
}

func TestValidateRejectsConvertibleValueForPrimitive(t *testing.T) {
	// cty would happily convert the string "true" to a bool; the schema
	// must not. Same for a number supplied where a string is declared.
	cases := map[string]map[string]cty.Value{
		"string for bool":   {GPU: cty.StringVal("true")},
		"number for string": {DashboardPassword: cty.NumberIntVal(42)},
		"bool for string":   {ChatModel: cty.True},
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			set, _, err := Validate(context.Background(), raw)
			assert.Nil(t, set)

			var tme *TypeMismatchError
			require.ErrorAs(t, err, &tme)
		})
	}
}

func TestValidateUnknownOption(t *testing.T) {
	raw := map[string]cty.Value{
		"no_such_option": cty.True,
	}

	set, _, err := Validate(context.Background(), raw)
	assert.Nil(t, set)

	var uoe *UnknownOptionError
	require.True(t, errors.As(err, &uoe))
	assert.Equal(t, "no_such_option", uoe.Name)
}

func TestValidateNullFallsBackToDefault(t *testing.T) {
	raw := map[string]cty.Value{
		DashboardPassword: cty.NullVal(cty.String),
	}

	set, _, err := Validate(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "admin", set.String(DashboardPassword))
}

func TestAccessorPanicsOnUndeclaredName(t *testing.T) {
	set, _, err := Validate(context.Background(), nil)
	require.NoError(t, err)

	assert.Panics(t, func() { set.Bool("dne") })
}
