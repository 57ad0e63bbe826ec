// Package config loads and writes the sharedkit config.yaml.
//
// The file is validated against an embedded JSON schema before Viper reads
// it, so typos in key names fail loudly instead of being ignored.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sharedkit/internal/paths"
	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

//go:embed schema.json
var schemaJSON []byte

// Compiled at init; failure means the embedded schema is corrupt.
var configSchema = mustCompileSchema()

// ErrInvalidConfig is returned when config.yaml or an override is invalid.
var ErrInvalidConfig = errors.New("invalid config")

// Config keys, as spelled in config.yaml.
const (
	KeyBackend   = "backend"
	KeyDataDir   = "data_dir"
	KeyColor     = "color"
	KeyRecord    = "record"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// envPrefix prefixes environment overrides, e.g. SHAREDKIT_LOG_LEVEL.
const envPrefix = "SHAREDKIT"

// Config is the decoded config.yaml with defaults applied.
type Config struct {
	Backend   string      `yaml:"backend"`
	DataDir   string      `yaml:"data_dir,omitempty"`
	Color     types.Color `yaml:"color"`
	Record    bool        `yaml:"record"`
	LogLevel  string      `yaml:"log_level"`
	LogFormat string      `yaml:"log_format"`
}

// Default returns the configuration used when config.yaml is absent.
func Default() Config {
	return Config{
		Backend:   types.BackendSQLite,
		Color:     types.Red,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// StoreConfig returns the store configuration for dataDir.
func (c Config) StoreConfig(dataDir string) types.Config {
	return types.Config{Backend: c.Backend, DataDir: dataDir}
}

// Load reads config.yaml from configDir. A missing file is not an error:
// defaults apply. SHAREDKIT_COLOR, SHAREDKIT_RECORD, SHAREDKIT_LOG_LEVEL and
// SHAREDKIT_LOG_FORMAT override the file. data_dir has no environment
// override here; paths.ResolveDataDir handles SHAREDKIT_DATA_DIR.
func Load(configDir string) (*Config, error) {
	path := paths.ConfigFile(configDir)
	exists, err := validateFile(path)
	if err != nil {
		return nil, err
	}

	def := Default()
	v := viper.New()
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyColor, def.Color.Tag())
	v.SetDefault(KeyRecord, def.Record)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{KeyColor, KeyRecord, KeyLogLevel, KeyLogFormat} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if exists {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	color, err := types.ParseColor(v.GetString(KeyColor))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Config{
		Backend:   v.GetString(KeyBackend),
		DataDir:   v.GetString(KeyDataDir),
		Color:     color,
		Record:    v.GetBool(KeyRecord),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}, nil
}

// WriteDefault writes config.yaml into configDir unless one already exists.
// It creates configDir as needed and reports whether a file was written.
func WriteDefault(configDir, dataDir string) (bool, error) {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	cfg := Default()
	cfg.DataDir = dataDir
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# sharedkit configuration\n")
	buf.Write(data)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

// validateFile checks the YAML at path against the embedded schema and
// reports whether the file exists. A missing or empty file passes.
func validateFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read config: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return true, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if raw == nil {
		return true, nil
	}
	if err := configSchema.Validate(raw); err != nil {
		return true, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return true, nil
}

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("config schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		panic(fmt.Sprintf("config schema: %v", err))
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("config schema: %v", err))
	}
	return schema
}
