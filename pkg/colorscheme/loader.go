package colorscheme

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Extensions lists the supported colorscheme file extensions in lookup order
var Extensions = []string{".json", ".toml", ".yaml", ".yml"}

// entry is one name/value pair in file order
type entry struct {
	name  string
	value string
}

// Load reads and validates a colorscheme file
func Load(fs types.FS, path string) (*colortable.Table, error) {
	logger := logging.GetLogger("colorscheme")

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrColorscheme, "can't read colorscheme `%s`", path)
	}

	table, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrColorscheme, "invalid colorscheme `%s`", path)
	}

	logger.Debug().Str("path", path).Int("colors", table.Len()).Msg("Colorscheme loaded")
	return table, nil
}

// Parse decodes colorscheme data according to the file extension and
// validates it
func Parse(data []byte, ext string) (*colortable.Table, error) {
	var (
		entries []entry
		err     error
	)

	switch strings.ToLower(ext) {
	case ".json":
		entries, err = parseJSON(data)
	case ".toml":
		entries, err = parseTOML(data)
	case ".yaml", ".yml":
		entries, err = parseYAML(data)
	default:
		return nil, errors.Newf(errors.ErrColorscheme, "unsupported colorscheme extension `%s`", ext)
	}
	if err != nil {
		return nil, err
	}

	return build(entries)
}

// parseJSON walks the object in file order so duplicate keys are visible
func parseJSON(data []byte) ([]entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.ErrColorscheme, "malformed JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New(errors.ErrColorscheme, "expected a JSON object")
	}

	var (
		entries []entry
		bad     error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			bad = errors.Newf(errors.ErrColorscheme, "color `%s` must be a string", key.String())
			return false
		}
		entries = append(entries, entry{name: key.String(), value: value.String()})
		return true
	})
	if bad != nil {
		return nil, bad
	}

	return entries, nil
}

func parseTOML(data []byte) ([]entry, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrColorscheme, "malformed TOML")
	}
	return entriesFromMap(raw)
}

func parseYAML(data []byte) ([]entry, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrColorscheme, "malformed YAML")
	}
	return entriesFromMap(raw)
}

func entriesFromMap(raw map[string]interface{}) ([]entry, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]entry, 0, len(names))
	for _, name := range names {
		value, ok := raw[name].(string)
		if !ok {
			return nil, errors.Newf(errors.ErrColorscheme, "color `%s` must be a string", name)
		}
		entries = append(entries, entry{name: name, value: value})
	}
	return entries, nil
}

// build validates entries and converts them into a table
func build(entries []entry) (*colortable.Table, error) {
	table := colortable.New()

	for _, e := range entries {
		if _, exists := table.Get(e.name); exists {
			return nil, errors.Newf(errors.ErrColorscheme, "color `%s` was already defined", e.name)
		}

		if !IsColorName(e.name) {
			return nil, errors.Newf(errors.ErrColorscheme,
				"invalid color name `%s`. Valid color names are `%s`", e.name, strings.Join(ColorNames, "`, `"))
		}

		c, err := color.ParseHex(e.value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrColorscheme, "color `%s`", e.name)
		}

		table.Set(e.name, c)
	}

	for _, name := range ColorNames {
		if _, ok := table.Get(name); !ok {
			return nil, errors.Newf(errors.ErrColorscheme, "missing required color `%s`", name)
		}
	}

	return table, nil
}

// Find resolves a colorscheme name to a file in dir, trying each
// supported extension in order
func Find(fs types.FS, dir, name string) (string, error) {
	tried := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if info, err := fs.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		tried = append(tried, path)
	}

	return "", errors.Newf(errors.ErrNotFound,
		"can't find colorscheme `%s`. None of the following files exists `%s`", name, strings.Join(tried, "`, `")).
		WithDetail("colorscheme", name)
}

// IsColorschemeFile reports whether path has a supported extension
func IsColorschemeFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Name returns the colorscheme name of a file path
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
