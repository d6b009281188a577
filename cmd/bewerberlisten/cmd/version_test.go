package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)

	runVersion(versionCmd, nil)

	out := buf.String()
	assert.Contains(t, out, "bewerberlisten version")
	assert.Contains(t, out, Version)
	assert.Contains(t, out, "Commit:")
	assert.Contains(t, out, "Go version:")
	assert.Contains(t, out, "OS/Arch:")
}
