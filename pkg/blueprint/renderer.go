package blueprint

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// scanState tracks which region of a blueprint is being read
type scanState int

const (
	stateDirectives scanState = iota
	stateBody
)

// Result is a fully rendered blueprint
type Result struct {
	// Blueprint is the source path
	Blueprint string
	// Name is the file name the result is written under
	Name string
	// OutputDirectory is where the result goes, after directives
	OutputDirectory string
	Content         []byte
}

// Renderer renders blueprints against one color table
type Renderer struct {
	fs       types.FS
	resolver *Resolver
	defaults Defaults
}

// NewRenderer creates a renderer. The table is shared by every render and
// accumulates composite colors.
func NewRenderer(fs types.FS, table *colortable.Table, defaults Defaults) *Renderer {
	return &Renderer{
		fs:       fs,
		resolver: NewResolver(table),
		defaults: defaults,
	}
}

// Render reads and renders the blueprint at path
func (r *Renderer) Render(path string) (*Result, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBlueprint, "can't read blueprint `%s`", path)
	}
	return r.RenderReader(path, bytes.NewReader(data))
}

// RenderReader renders blueprint content read from in. path names the
// blueprint in messages and gives the result its name.
func (r *Renderer) RenderReader(path string, in io.Reader) (*Result, error) {
	logger := logging.GetLogger("blueprint")

	state := NewState(r.defaults)
	scan := stateDirectives

	var out bytes.Buffer
	reader := bufio.NewReader(in)

	for lineNo := 1; ; lineNo++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrapf(readErr, errors.ErrBlueprint, "can't read blueprint `%s`", path)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if scan == stateDirectives && !IsDirectiveLine(line) {
			scan = stateBody
		}

		switch scan {
		case stateDirectives:
			if err := r.applyDirective(state, line); err != nil {
				return nil, errors.Wrapf(err, errors.ErrBlueprint,
					"while parsing blueprint `%s` at line %d", path, lineNo).
					WithDetail("blueprint", path).
					WithDetail("line", lineNo)
			}
		case stateBody:
			out.WriteString(r.resolver.ResolveLine(line, state.ColorFormat, path))
			out.WriteByte('\n')
		}

		if readErr == io.EOF {
			break
		}
	}

	logger.Debug().
		Str("blueprint", path).
		Str("format", string(state.ColorFormat)).
		Str("outputDirectory", state.OutputDirectory).
		Int("bytes", out.Len()).
		Msg("Blueprint rendered")

	return &Result{
		Blueprint:       path,
		Name:            filepath.Base(path),
		OutputDirectory: state.OutputDirectory,
		Content:         out.Bytes(),
	}, nil
}

func (r *Renderer) applyDirective(state *State, line string) error {
	d, err := ParseDirective(line)
	if err != nil {
		return err
	}
	return state.Apply(r.fs, d)
}
