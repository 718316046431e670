package blueprint

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Discover lists the regular files of each directory, directories in the
// given order and files sorted by name. Unreadable directories are logged
// and skipped.
func Discover(fs types.FS, dirs ...string) []string {
	logger := logging.GetLogger("blueprint")

	var found []string
	for _, dir := range dirs {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			logger.Error().
				Err(errors.Wrapf(err, errors.ErrSystem, "can't read blueprints directory `%s`", dir)).
				Msg("Skipping blueprints directory")
			continue
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}

	logger.Debug().Strs("dirs", dirs).Int("count", len(found)).Msg("Blueprints discovered")
	return found
}

// Select resolves blueprint names given on the command line. A plain name
// is looked up in each directory and then as a path; the first existing
// file wins. A name holding glob characters matches every discovered
// blueprint whose base name matches it. Names that match nothing produce
// a NOT_FOUND error each.
func Select(fs types.FS, dirs []string, patterns []string) ([]string, []error) {
	var (
		selected []string
		errs     []error
		seen     = make(map[string]bool)
	)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			selected = append(selected, path)
		}
	}

	var discovered []string
	for _, pattern := range patterns {
		if isGlob(pattern) {
			if discovered == nil {
				discovered = Discover(fs, dirs...)
			}

			matched := false
			for _, path := range discovered {
				if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
					add(path)
					matched = true
				}
			}
			if !matched {
				errs = append(errs, errors.Newf(errors.ErrNotFound,
					"no blueprint matches `%s` in `%s`", pattern, strings.Join(dirs, "`, `")).
					WithDetail("blueprint", pattern))
			}
			continue
		}

		path, err := find(fs, dirs, pattern)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		add(path)
	}

	return selected, errs
}

func find(fs types.FS, dirs []string, name string) (string, error) {
	candidates := make([]string, 0, len(dirs)+1)
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	candidates = append(candidates, paths.ExpandHome(name))

	for _, path := range candidates {
		if info, err := fs.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", errors.Newf(errors.ErrNotFound,
		"can't find blueprint `%s`. None of the following files exists `%s`", name, strings.Join(candidates, "`, `")).
		WithDetail("blueprint", name)
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
