// internal/cli/cli_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Isolated filesystem, cobra
// PURPOSE: Drive the root command end to end against temp XDG directories

package cli_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/chromasync/internal/cli"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := cli.NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"-q"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddColorscheme("dusk", map[string]string{"background": "#112233"})
	env.AddBlueprint("kitty.conf", "%color-format 6h\nbackground {background}\n")

	out, err := execute(t, "load", "dusk")
	require.NoError(t, err)

	assert.Contains(t, out, "Loaded colorscheme dusk")
	assert.Contains(t, out, "Rendered 1 blueprint(s)")
	assert.Equal(t, "background 112233\n", env.Output("kitty.conf"))
}

func TestLoadCmd_ColorFormatFlag(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddColorscheme("dusk", map[string]string{"foreground": "#AABBCC"})
	env.AddBlueprint("plain.txt", "{foreground}\n")

	_, err := execute(t, "load", "dusk", "--color-format", "6h")
	require.NoError(t, err)
	assert.Equal(t, "AABBCC\n", env.Output("plain.txt"))
}

func TestLoadCmd_UnknownColorscheme(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := execute(t, "load", "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrColorscheme))
}

func TestLoadCmd_RequiresArgument(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := execute(t, "load")
	require.Error(t, err)
}

func TestReloadCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddColorscheme("dusk", map[string]string{"background": "#112233"})
	env.AddBlueprint("a.conf", "{background}\n")

	_, err := execute(t, "load", "dusk", "--no-script")
	require.NoError(t, err)

	env.AddBlueprint("b.conf", "%color-format 6h\n{background}\n")
	out, err := execute(t, "reload", "-b", "b.conf", "-b", "nope.conf")
	require.NoError(t, err)

	assert.Contains(t, out, "No blueprint matched: nope.conf")
	assert.Contains(t, out, "Rendered 1 blueprint(s)")
	assert.Equal(t, "112233\n", env.Output("b.conf"))
}

func TestReloadCmd_NothingLoaded(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := execute(t, "reload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no colorscheme has been loaded yet")
}

func TestListCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddColorscheme("night", map[string]string{"background": "#000000", "foreground": "#FFFFFF"})
	env.AddColorscheme("paper", map[string]string{"background": "#FFFFFF", "foreground": "#000000"})

	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^NAME\s+LUM \(BG\)\s+CONT$`, lines[0])
	assert.Regexp(t, `^night\s+0\.00\s+`, lines[1])
	assert.Regexp(t, `^paper\s+1\.00\s+`, lines[2])
}

func TestListCmd_Filters(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.AddColorscheme("night", map[string]string{"background": "#000000"})
	env.AddColorscheme("paper", map[string]string{"background": "#FFFFFF"})

	out, err := execute(t, "list", "--dark")
	require.NoError(t, err)
	assert.Contains(t, out, "night")
	assert.NotContains(t, out, "paper")

	out, err = execute(t, "list", "-l", "--sort-by", "lum")
	require.NoError(t, err)
	assert.Contains(t, out, "paper")
	assert.NotContains(t, out, "night")

	_, err = execute(t, "list", "--dark", "--light")
	require.Error(t, err)
}

func TestListCmd_InvalidSort(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := execute(t, "list", "--sort-by", "size")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestListCmd_Empty(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No colorschemes found in "+env.Paths.ColorschemesDir())
}

func TestGenConfigCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[render]")

	out, err = execute(t, "genconfig", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to "+filepath.Join(env.ConfigDir, "chromasync.toml"))

	out, err = execute(t, "genconfig", "-w")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestVersionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chromasync dev")
}

func TestCompletionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "chromasync")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestVerboseAndQuietAreExclusive(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"-v", "-q", "version"})
	require.Error(t, rootCmd.Execute())
}
