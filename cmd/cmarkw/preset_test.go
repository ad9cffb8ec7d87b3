package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgonek/cmark-writer/cmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetOptions(t *testing.T) {
	t.Run("commonmark", func(t *testing.T) {
		opts, err := presetOptions(presetCommonMark)
		require.NoError(t, err)
		assert.Equal(t, cmark.Options{}, opts)
	})

	t.Run("empty defaults to commonmark", func(t *testing.T) {
		opts, err := presetOptions("")
		require.NoError(t, err)
		assert.Equal(t, cmark.Options{}, opts)
	})

	t.Run("gfm", func(t *testing.T) {
		opts, err := presetOptions(" GFM ")
		require.NoError(t, err)
		assert.Equal(t, cmark.EnableGFM(cmark.Options{}), opts)
	})

	t.Run("lenient", func(t *testing.T) {
		opts, err := presetOptions(presetLenient)
		require.NoError(t, err)
		assert.Equal(t, cmark.ModeLenient, opts.Mode)
		assert.True(t, opts.GFM.Enabled)
		assert.True(t, opts.TrimParagraphTrailingHardBreaks)
	})

	t.Run("strict", func(t *testing.T) {
		opts, err := presetOptions(presetStrict)
		require.NoError(t, err)
		assert.Equal(t, cmark.ModeStrict, opts.Mode)
		assert.True(t, opts.GFM.Tables)
		assert.True(t, opts.TablePadding)
	})
}

func TestPresetOptionsInvalid(t *testing.T) {
	_, err := presetOptions("unknown")
	require.Error(t, err)
	assert.Equal(t, `unknown preset "unknown" (allowed: commonmark, gfm, lenient, strict)`, err.Error())
}

func TestResolveOptionsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = \"strict\"\nbullet_marker = \"+\"\n"), 0644))

	opts, err := resolveOptions(rootFlags{preset: presetLenient, config: path})
	require.NoError(t, err)
	assert.Equal(t, cmark.ModeStrict, opts.Mode)
	assert.Equal(t, '+', opts.BulletMarker)
	assert.True(t, opts.TrimParagraphTrailingHardBreaks)

	opts, err = resolveOptions(rootFlags{preset: presetLenient, config: path, lenient: true})
	require.NoError(t, err)
	assert.Equal(t, cmark.ModeLenient, opts.Mode)

	opts, err = resolveOptions(rootFlags{preset: presetLenient, strict: true})
	require.NoError(t, err)
	assert.Equal(t, cmark.ModeStrict, opts.Mode)

	opts, err = resolveOptions(rootFlags{gfm: true})
	require.NoError(t, err)
	assert.True(t, opts.GFM.Autolinks)
}

func TestResolveOptionsErrors(t *testing.T) {
	_, err := resolveOptions(rootFlags{strict: true, lenient: true})
	assert.EqualError(t, err, "--strict and --lenient are mutually exclusive")

	_, err = resolveOptions(rootFlags{preset: "loose"})
	assert.Error(t, err)

	_, err = resolveOptions(rootFlags{config: filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorContains(t, err, "failed to read options file")
}
