// pkg/executor/executor_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem, /bin/sh
// PURPOSE: Test running the post script

package executor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chromasync-post.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode))
	return path
}

func newTestScript(path string) (*PostScript, *bytes.Buffer) {
	var out bytes.Buffer
	p := NewPostScript(path)
	p.Stdout = &out
	p.Stderr = &out
	return p, &out
}

func TestPostScript_Run(t *testing.T) {
	path := writeScript(t, "echo reloaded\npwd -P\n", 0755)
	p, out := newTestScript(path)

	ran, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)

	realDir, err := filepath.EvalSymlinks(filepath.Dir(path))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "reloaded")
	assert.Contains(t, out.String(), realDir, "scripts run from their own directory")
}

func TestPostScript_Missing(t *testing.T) {
	p, _ := newTestScript(filepath.Join(t.TempDir(), "nope.sh"))

	ran, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestPostScript_Failures(t *testing.T) {
	t.Run("non_zero_exit", func(t *testing.T) {
		p, out := newTestScript(writeScript(t, "echo boom >&2\nexit 3\n", 0755))

		ran, err := p.Run(context.Background())
		require.Error(t, err)
		assert.True(t, ran)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExecution))
		assert.Contains(t, out.String(), "boom")
	})

	t.Run("not_executable", func(t *testing.T) {
		p, _ := newTestScript(writeScript(t, "exit 0\n", 0644))

		_, err := p.Run(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExecution))
	})

	t.Run("directory", func(t *testing.T) {
		p, _ := newTestScript(t.TempDir())

		_, err := p.Run(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExecution))
	})

	t.Run("cancelled_context", func(t *testing.T) {
		p, _ := newTestScript(writeScript(t, "sleep 5\n", 0755))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Run(ctx)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExecution))
	})
}
