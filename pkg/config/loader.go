package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/colorscheme"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CHROMASYNC_"

// Load builds the configuration from the embedded defaults, the first
// existing file among configFiles, the environment and overrides (flat
// dotted keys such as "post_script.enabled"), in that order.
func Load(configFiles []string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	for _, path := range configFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		parser := parserFor(path)
		if parser == nil {
			return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file `%s`", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from `%s`", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		break
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				expandHomeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps CHROMASYNC_RENDER__COLOR_FORMAT to render.color_format
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return nil
}

// expandHomeHookFunc expands a leading ~ in string values
func expandHomeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		s, ok := data.(string)
		if !ok || !strings.HasPrefix(s, "~") {
			return data, nil
		}
		return paths.ExpandHome(s), nil
	}
}

func validate(cfg *Config) error {
	if _, err := color.ParseFormat(cfg.Render.ColorFormat); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "invalid render.color_format")
	}
	if _, err := colorscheme.ParseSortKey(cfg.List.SortBy); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "invalid list.sort_by")
	}
	return nil
}
