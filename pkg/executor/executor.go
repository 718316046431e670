package executor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/rs/zerolog"
)

// PostScript is the script run once after a batch render
type PostScript struct {
	Path string

	// Stdout and Stderr default to the process's own streams
	Stdout io.Writer
	Stderr io.Writer

	logger zerolog.Logger
}

// NewPostScript creates a post script runner for path
func NewPostScript(path string) *PostScript {
	return &PostScript{
		Path:   path,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logging.GetLogger("executor"),
	}
}

// Run executes the script and waits for it. It returns false when there
// is no script to run.
func (p *PostScript) Run(ctx context.Context) (bool, error) {
	info, err := os.Stat(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Info().Str("script", p.Path).Msg("No post script, skipping")
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrExecution, "can't access post script `%s`", p.Path)
	}
	if info.IsDir() {
		return false, errors.Newf(errors.ErrExecution, "post script `%s` is a directory", p.Path)
	}

	p.logger.Info().Str("script", p.Path).Msg("Executing post script")
	start := time.Now()

	cmd := exec.CommandContext(ctx, p.Path)
	cmd.Dir = filepath.Dir(p.Path)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		return true, errors.Wrapf(err, errors.ErrExecution, "failed to execute post script `%s`", p.Path).
			WithDetail("script", p.Path)
	}

	p.logger.Info().
		Str("script", p.Path).
		Dur("duration", time.Since(start)).
		Msg("Post script executed successfully")
	return true, nil
}
