package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/praetorian-inc/wgrep"
	"github.com/praetorian-inc/wgrep/pkg/serve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(`{"type":"scan","payload":{"content":"The Cat sat","source":"inline"}}` + "\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve", "-i", "cat"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)

	var resp serve.Response
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "scan", resp.Type)
	assert.Contains(t, string(resp.Data), `"outcome":"found"`)
}

func TestServe_EmptyPattern(t *testing.T) {
	_, _, err := runCLI(t, "serve", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, wgrep.ErrConfiguration)
}
