package blueprint

import (
	"path/filepath"

	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// Sink receives rendered blueprints
type Sink interface {
	Write(dir, name string, data []byte) error
}

// FSSink writes rendered blueprints to a filesystem, replacing existing
// files through a temporary file and a rename
type FSSink struct {
	fs types.FS
}

// NewFSSink creates a sink writing to fs
func NewFSSink(fs types.FS) *FSSink {
	return &FSSink{fs: fs}
}

// Write stores data as dir/name
func (s *FSSink) Write(dir, name string, data []byte) error {
	target := filepath.Join(dir, name)
	tmp := target + ".tmp"

	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSystem, "can't write `%s`", tmp)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrSystem, "can't replace `%s`", target)
	}
	return nil
}
