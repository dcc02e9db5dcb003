package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "occfix "), stdout)
}

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
}

func TestPrintVersionInfo(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "0.4.0"
	var buf bytes.Buffer
	printVersionInfo(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "occfix 0.4.0 ("), buf.String())
}

func TestResolveVersionInfo_DevFallback(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "dev", "unknown", "unknown"
	v, c, d := resolveVersionInfo()

	assert.NotEmpty(t, v)
	t.Logf("resolved: version=%s commit=%s date=%s", v, c, d)
}
