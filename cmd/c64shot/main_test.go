package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"192.168.1.64"})
	require.NoError(t, err)
	require.Equal(t, "192.168.1.64", cfg.host)
	require.Equal(t, "screenshot.png", cfg.outputPath)
	require.True(t, cfg.sprites)
	require.False(t, cfg.border)
	require.Equal(t, 1, cfg.upscale)
}

func TestParseArgsOutputPathAndLongFlags(t *testing.T) {
	cfg, err := parseArgs([]string{"--border", "--upscale=3", "--nosprites", "--password=hunter2", "192.168.1.64", "out.bmp"})
	require.NoError(t, err)
	require.Equal(t, "192.168.1.64", cfg.host)
	require.Equal(t, "out.bmp", cfg.outputPath)
	require.True(t, cfg.border)
	require.False(t, cfg.sprites)
	require.Equal(t, 3, cfg.upscale)
	require.Equal(t, "hunter2", cfg.password)
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parseArgs([]string{"--help"})
	require.True(t, errors.Is(err, errHelpRequested))
}

func TestParseArgsMissingHost(t *testing.T) {
	_, err := parseArgs([]string{})
	require.Error(t, err)
}

func TestParseArgsRejectsBadUpscale(t *testing.T) {
	_, err := parseArgs([]string{"--upscale=0", "192.168.1.64"})
	require.Error(t, err)
	_, err = parseArgs([]string{"--upscale=abc", "192.168.1.64"})
	require.Error(t, err)
}

func TestParseArgsUnknownFlagSuggestsCorrection(t *testing.T) {
	_, err := parseArgs([]string{"--scale=2", "192.168.1.64"})
	require.ErrorContains(t, err, "--upscale=N")
}

func TestValidExtension(t *testing.T) {
	require.True(t, validExtension(".png"))
	require.True(t, validExtension(".tiff"))
	require.False(t, validExtension(".webp"))
}
