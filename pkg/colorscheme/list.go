package colorscheme

import (
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// DarkThreshold separates dark backgrounds (below) from light ones
const DarkThreshold = 0.5

// Info summarizes a colorscheme for listing
type Info struct {
	Name                string
	Path                string
	Background          color.RGB
	Foreground          color.RGB
	BackgroundLuminance float64
	Contrast            float64
}

// IsDark reports whether the background is dark
func (i Info) IsDark() bool {
	return i.BackgroundLuminance < DarkThreshold
}

// SortKey orders listed colorschemes
type SortKey string

const (
	SortByName                SortKey = "name"
	SortByBackgroundLuminance SortKey = "background-luminance"
	SortByContrast            SortKey = "contrast"
)

var sortAliases = map[SortKey][]string{
	SortByName: {"n"},
	SortByBackgroundLuminance: {
		"background_luminance", "bg-lum", "bg_lum", "bglum", "background", "bg",
		"luminance", "lum", "background-brightness", "background_brightness", "brightness",
	},
	SortByContrast: {"contr", "cont", "con", "cntr", "cnt"},
}

// SortKeys lists the canonical sort keys
var SortKeys = []SortKey{SortByName, SortByBackgroundLuminance, SortByContrast}

// ParseSortKey resolves a sort key or one of its aliases
func ParseSortKey(s string) (SortKey, error) {
	for _, key := range SortKeys {
		if string(key) == s {
			return key, nil
		}
		for _, alias := range sortAliases[key] {
			if alias == s {
				return key, nil
			}
		}
	}

	names := make([]string, len(SortKeys))
	for i, key := range SortKeys {
		names[i] = string(key)
	}
	return "", errors.Newf(errors.ErrInvalidInput,
		"invalid sort order `%s`. Valid orders are `%s`", s, strings.Join(names, "`, `"))
}

// Filter selects colorschemes by background brightness
type Filter int

const (
	FilterAll Filter = iota
	FilterDark
	FilterLight
)

// ListOptions controls List
type ListOptions struct {
	Filter Filter
	SortBy SortKey
}

// NewInfo loads the colorscheme at path and summarizes it
func NewInfo(fs types.FS, path string) (Info, error) {
	table, err := Load(fs, path)
	if err != nil {
		return Info{}, err
	}

	background, _ := table.Get(Background)
	foreground, _ := table.Get(Foreground)

	bgLum := background.Luminance()
	fgLum := foreground.Luminance()

	return Info{
		Name:                Name(path),
		Path:                path,
		Background:          background,
		Foreground:          foreground,
		BackgroundLuminance: bgLum,
		Contrast:            math.Abs(fgLum - bgLum),
	}, nil
}

// List summarizes every valid colorscheme in dir. Invalid files are skipped.
func List(fs types.FS, dir string, opts ListOptions) ([]Info, error) {
	logger := logging.GetLogger("colorscheme")

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSystem, "can't read the `%s` directory", dir)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsColorschemeFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := NewInfo(fs, path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping invalid colorscheme")
			continue
		}

		switch opts.Filter {
		case FilterDark:
			if !info.IsDark() {
				continue
			}
		case FilterLight:
			if info.IsDark() {
				continue
			}
		}

		infos = append(infos, info)
	}

	Sort(infos, opts.SortBy)
	return infos, nil
}

// Sort orders infos in place; ties are broken by name
func Sort(infos []Info, key SortKey) {
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		switch key {
		case SortByBackgroundLuminance:
			if a.BackgroundLuminance != b.BackgroundLuminance {
				return a.BackgroundLuminance < b.BackgroundLuminance
			}
		case SortByContrast:
			if a.Contrast != b.Contrast {
				return a.Contrast < b.Contrast
			}
		}
		return a.Name < b.Name
	})
}
