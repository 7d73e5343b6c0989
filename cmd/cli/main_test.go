package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunComposesWithDefaults(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-log-level", "error"}))
	assert.Contains(t, out.String(), "services:")
}

func TestRunHelp(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-h"}))
	assert.Contains(t, logs.String(), "Usage:")
	assert.Empty(t, out.String())
}

func TestRunUnknownFlag(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-nope"})
	require.Error(t, err)
}
