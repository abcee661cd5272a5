package config

import (
	_ "embed"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables overriding the file
const EnvPrefix = "VITEX_"

// envKeys are the configuration keys that may be set from the environment.
// Other VITEX_ variables (such as VITEX_CONFIG_DIR) are not configuration,
// and empty values are ignored.
var envKeys = map[string]bool{
	"author": true,
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultContent returns the content written to a missing configuration file
func DefaultContent() []byte {
	return defaultConfig
}

// Load reads the configuration at path. When the file does not exist it is
// created from the embedded defaults first.
func Load(fsys types.FS, path string) (*Config, error) {
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loading configuration")

	created := false
	data, err := fsys.ReadFile(path)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration file %s", path).
				WithDetail("path", path)
		}
		if err := writeDefault(fsys, path); err != nil {
			return nil, err
		}
		logger.Info().Str("path", path).Msg("Created default configuration file")
		data = defaultConfig
		created = true
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse configuration file %s", path).
			WithDetail("path", path)
	}
	cfg.Path = path
	cfg.Created = created

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("templates", len(cfg.Templates)).
		Bool("created", created).
		Msg("Configuration loaded")
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"author": "",
	}, "."), nil); err != nil {
		return nil, err
	}

	// 2. File
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, err
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(s, v string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !envKeys[key] || v == "" {
			return "", nil
		}
		return key, v
	}), nil); err != nil {
		return nil, err
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimSpaceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeDefault(fsys types.FS, path string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create configuration directory %s", filepath.Dir(path)).
			WithDetail("path", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, defaultConfig, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write default configuration to %s", path).
			WithDetail("path", path)
	}
	return nil
}

// trimSpaceHookFunc strips surrounding whitespace from every decoded string
func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(reflect.ValueOf(data).String()), nil
	}
}
