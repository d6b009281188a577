package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "bewerberlisten", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Version)
}

func TestRootFlagDefaults(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "bewerberlisten.yaml", flag.DefValue)
	assert.Equal(t, "c", flag.Shorthand)

	flag = rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["convert"])
	assert.True(t, names["version"])
}

func TestConvertFlags(t *testing.T) {
	flag := convertCmd.Flags().Lookup("input-dir")
	require.NotNil(t, flag)
	assert.Equal(t, "i", flag.Shorthand)

	flag = convertCmd.Flags().Lookup("skip-pdf")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestGetCLIOverrides(t *testing.T) {
	overrides := GetCLIOverrides()
	assert.Equal(t, logLevel, overrides.LogLevel)
	assert.Equal(t, logFormat, overrides.LogFormat)
	assert.Equal(t, verbose, overrides.KeepArtifacts)
}
