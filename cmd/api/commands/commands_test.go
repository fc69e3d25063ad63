package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethiocal/core/internal/domain/entities"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", "2023-09-11")
	require.NoError(t, err)
	assert.Equal(t, "2016-01-01\nሰኞ, መስከረም 01, 2016\n", out)
}

func TestConvertCommand_JSON(t *testing.T) {
	out, err := execute(t, "convert", "2000-09-12", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"numeric":"1993-01-02","verbose":"ማክሰኞ, መስከረም 02, 1993"}`, out)
}

func TestConvertCommand_Errors(t *testing.T) {
	_, err := execute(t, "convert", "2023-02-30")
	assert.ErrorIs(t, err, entities.ErrInvalidDate)

	_, err = execute(t, "convert", "tomorrow")
	assert.ErrorIs(t, err, entities.ErrMalformedDate)

	_, err = execute(t, "convert")
	assert.Error(t, err)

	_, err = execute(t, "convert", "2023-09-11", "-o", "yaml")
	assert.Error(t, err)
}

func TestConvertCommand_RejectsTimezone(t *testing.T) {
	_, err := execute(t, "convert", "2023-09-11", "--timezone", "UTC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --timezone")
}

func TestTodayCommand(t *testing.T) {
	out, err := execute(t, "today", "--timezone", "UTC")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+-\d{2}-\d{2}\n.+\n$`, out)

	_, err = execute(t, "today", "--timezone", "Atlantis/Capital")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ethiocal v"+Version)
}
