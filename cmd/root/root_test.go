package root_test

import (
	"bytes"
	"os"
	"testing"

	"brnotif/notif-parse/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir stands in for testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "notif-parse", root.Cmd.Use)
	assert.NotEmpty(t, root.Cmd.Short)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommandRunLoadsConfig(t *testing.T) {
	chdir(t, t.TempDir())

	buf := new(bytes.Buffer)
	root.Cmd.SetOut(buf)
	root.Cmd.SetErr(buf)
	root.Cmd.SetArgs(nil)

	require.NoError(t, root.Cmd.Execute())
	require.NotNil(t, root.Cfg)
	assert.Equal(t, "info", root.Cfg.Log.Level)
}
