// pkg/commands/genconfig/genconfig_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test generating and writing the configuration file

package genconfig_test

import (
	"testing"

	"github.com/arthur-debert/chromasync/pkg/commands/genconfig"
	"github.com/arthur-debert/chromasync/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := genconfig.GenConfig(genconfig.GenConfigOptions{FS: env.FS, Paths: env.Paths})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, `# color_format = "#6h"`)
	assert.Empty(t, result.FilesWritten)
}

func TestGenConfig_Effective(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Config.List.SortBy = "contrast"

	result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
		FS: env.FS, Paths: env.Paths, Config: env.Config, Effective: true,
	})
	require.NoError(t, err)
	assert.Contains(t, result.ConfigContent, "contrast")
	assert.NotContains(t, result.ConfigContent, "# ")
}

func TestGenConfig_Write(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	opts := genconfig.GenConfigOptions{FS: env.FS, Paths: env.Paths, Write: true}

	result, err := genconfig.GenConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{env.Paths.ConfigFilePath()}, result.FilesWritten)
	assert.Equal(t, result.ConfigContent, testutil.ReadFile(t, env.FS, env.Paths.ConfigFilePath()))

	result, err = genconfig.GenConfig(opts)
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten, "existing config files are kept")
}
