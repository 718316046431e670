// pkg/blueprint/batch_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Memory FS, captured logs
// PURPOSE: Test rendering a batch of blueprints with per-file failures

package blueprint_test

import (
	"testing"

	"github.com/arthur-debert/chromasync/pkg/blueprint"
	"github.com/arthur-debert/chromasync/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	writes map[string]string
	fail   map[string]bool
}

func (s *recordingSink) Write(dir, name string, data []byte) error {
	if s.fail[name] {
		return assert.AnError
	}
	s.writes[dir+"/"+name] = string(data)
	return nil
}

func TestBatch_Run(t *testing.T) {
	logs := testutil.CaptureLogs(t)
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll("/cache/out", 0755))
	require.NoError(t, fs.MkdirAll("/themes", 0755))

	testutil.WriteFile(t, fs, "/b/a.conf", "{cursor}\n")
	testutil.WriteFile(t, fs, "/b/b.conf", "%colour-format 6h\n{cursor}\n")
	testutil.WriteFile(t, fs, "/b/c.conf", "%output-directory /themes\n%color-format 6h\n{foreground:50:background}\n")

	batch := &blueprint.Batch{
		Renderer: blueprint.NewRenderer(fs, testTable(), testDefaults),
		Sink:     blueprint.NewFSSink(fs),
	}

	summary := batch.Run(blueprint.Discover(fs, "/b"))
	assert.Equal(t, []string{"/b/a.conf", "/b/c.conf"}, summary.Rendered)
	assert.Equal(t, []string{"/b/b.conf"}, summary.Failed)

	assert.Equal(t, "#112233\n", testutil.ReadFile(t, fs, "/cache/out/a.conf"))
	assert.Equal(t, "7F7F7F\n", testutil.ReadFile(t, fs, "/themes/c.conf"))

	_, err := fs.Stat("/cache/out/b.conf")
	assert.Error(t, err, "failed blueprints write nothing")

	assert.Contains(t, logs.String(), "colour-format")
	assert.Contains(t, logs.String(), "/b/b.conf")
}

func TestBatch_SinkFailure(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/b/a.conf", "{cursor}\n")
	testutil.WriteFile(t, fs, "/b/b.conf", "{background}\n")

	sink := &recordingSink{writes: map[string]string{}, fail: map[string]bool{"a.conf": true}}
	batch := &blueprint.Batch{Renderer: blueprint.NewRenderer(fs, testTable(), testDefaults), Sink: sink}

	summary := batch.Run([]string{"/b/a.conf", "/b/b.conf"})
	assert.Equal(t, []string{"/b/b.conf"}, summary.Rendered)
	assert.Equal(t, []string{"/b/a.conf"}, summary.Failed)
	assert.Equal(t, map[string]string{"/cache/out/b.conf": "#FFFFFF\n"}, sink.writes)
}
