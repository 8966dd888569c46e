// Package config resolves autolink settings from defaults, config files and
// the environment.
//
// Priority, lowest first: built-in defaults, the user config
// (<Dir>/config.yaml), the project config (.autolink.yaml), AUTOLINK_* lines
// in the project .env file and AUTOLINK_* environment variables. Command-line flags are applied on top by the caller
// through ApplyFlags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hydradatabase/autolink/internal/envfile"
	"github.com/hydradatabase/autolink/internal/linker"
)

// Source records where a configuration value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceUser    Source = "user"
	SourceProject Source = "project"
	SourceDotenv  Source = "dotenv"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// Config keys.
const (
	KeyBaseURL = "base_url"
	KeyRemote  = "remote"
)

const envPrefix = "AUTOLINK_"

// EnvFilePath is the .env file read from the working directory.
const EnvFilePath = ".env"

// Config is the effective autolink configuration.
type Config struct {
	// BaseURL is the repository URL link targets are built under,
	// e.g. https://github.com/hydradatabase/hydra.
	BaseURL string `koanf:"base_url" yaml:"base_url" json:"base_url"`

	// Remote names a git remote to derive BaseURL from. Empty disables
	// remote lookup.
	Remote string `koanf:"remote" yaml:"remote" json:"remote"`

	// Sources maps each key to the layer that last set it.
	Sources map[string]Source `koanf:"-" yaml:"sources" json:"sources"`
}

// LoadOptions overrides the file locations used by Load. Empty fields use
// UserConfigPath, ProjectConfigPath and EnvFilePath.
type LoadOptions struct {
	UserConfigPath    string
	ProjectConfigPath string
	EnvFilePath       string
}

// ValidationError describes a configuration value that can't be used.
type ValidationError struct {
	Key     string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Key, e.Value, e.Message)
}

// ErrRead marks a configuration source that exists but could not be read.
// Errors without it are problems with the content.
var ErrRead = errors.New("reading configuration")

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyBaseURL: linker.DefaultBaseURL,
		KeyRemote:  "",
	}
}

// Load reads every configuration layer and returns the validated result.
func Load(opts LoadOptions) (*Config, error) {
	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = UserConfigPath()
	}
	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath
	}
	envFilePath := opts.EnvFilePath
	if envFilePath == "" {
		envFilePath = EnvFilePath
	}

	k := koanf.New(".")
	sources := make(map[string]Source)

	defaults := koanf.New(".")
	for key, value := range Defaults() {
		_ = defaults.Set(key, value)
	}
	if err := merge(k, defaults, SourceDefault, sources); err != nil {
		return nil, err
	}

	for _, layer := range []struct {
		path   string
		source Source
	}{
		{userPath, SourceUser},
		{projectPath, SourceProject},
	} {
		fileK, err := loadFile(layer.path, layer.source)
		if err != nil {
			return nil, err
		}
		if err := merge(k, fileK, layer.source, sources); err != nil {
			return nil, err
		}
	}

	dotenvK, err := loadDotenv(envFilePath)
	if err != nil {
		return nil, err
	}
	if err := merge(k, dotenvK, SourceDotenv, sources); err != nil {
		return nil, err
	}

	envK, err := loadEnv()
	if err != nil {
		return nil, err
	}
	if err := merge(k, envK, SourceEnv, sources); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile reads one YAML layer. A missing file yields an empty layer.
func loadFile(path string, source Source) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if path == "" {
		return k, nil
	}
	data, err := file.Provider(path).ReadBytes()
	if errors.Is(err, os.ErrNotExist) {
		return k, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s config %s: %w", ErrRead, source, path, err)
	}
	if err := k.Load(rawBytes(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing %s config %s: %w", source, path, err)
	}
	return k, nil
}

// rawBytes hands an already-read file to koanf so read and parse failures
// stay distinguishable.
type rawBytes []byte

func (b rawBytes) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b rawBytes) Read() (map[string]any, error) {
	return nil, errors.New("rawBytes provider does not support Read")
}

// loadDotenv reads AUTOLINK_* lines from a .env file.
func loadDotenv(path string) (*koanf.Koanf, error) {
	vars, err := envfile.Read(path, envPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	k := koanf.New(".")
	for name, value := range vars {
		if err := k.Set(envTransform(name), value); err != nil {
			return nil, fmt.Errorf("setting %s from %s: %w", name, path, err)
		}
	}
	return k, nil
}

// loadEnv reads AUTOLINK_* variables. Empty values are treated as unset.
func loadEnv() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrRead, err)
	}
	for _, key := range k.Keys() {
		if k.String(key) == "" {
			k.Delete(key)
		}
	}
	return k, nil
}

// envTransform converts environment variable names to config keys.
// Example: AUTOLINK_BASE_URL -> base_url
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// merge folds layer into k and records the source of every known key it sets.
// Unknown keys (AUTOLINK_CONFIG_HOME, typos in YAML) are not merged.
func merge(k, layer *koanf.Koanf, source Source, sources map[string]Source) error {
	known := koanf.New(".")
	for _, key := range []string{KeyBaseURL, KeyRemote} {
		if !layer.Exists(key) {
			continue
		}
		if err := known.Set(key, layer.Get(key)); err != nil {
			return fmt.Errorf("setting %s from %s config: %w", key, source, err)
		}
		sources[key] = source
	}
	if err := k.Merge(known); err != nil {
		return fmt.Errorf("merging %s config: %w", source, err)
	}
	return nil
}

// ApplyFlags overrides values with non-empty command-line flags.
func (c *Config) ApplyFlags(baseURL, remote string) error {
	if c.Sources == nil {
		c.Sources = make(map[string]Source)
	}
	if remote != "" {
		c.Remote = remote
		c.Sources[KeyRemote] = SourceFlag
	}
	if baseURL != "" {
		c.BaseURL = baseURL
		c.Sources[KeyBaseURL] = SourceFlag
	}
	return c.Validate()
}

// UsesRemote reports whether the base URL should be derived from the git
// remote. An explicit --base-url flag always wins over a remote.
func (c *Config) UsesRemote() bool {
	return c.Remote != "" && c.Sources[KeyBaseURL] != SourceFlag
}

// Validate checks that BaseURL is an absolute http(s) URL.
func (c *Config) Validate() error {
	return ValidateBaseURL(c.BaseURL)
}

// ValidateBaseURL checks that raw is an absolute http(s) URL with a host.
func ValidateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Key: KeyBaseURL, Value: raw, Message: "must not be empty"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &ValidationError{Key: KeyBaseURL, Value: raw, Message: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Key: KeyBaseURL, Value: raw, Message: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &ValidationError{Key: KeyBaseURL, Value: raw, Message: "missing host"}
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return &ValidationError{Key: KeyBaseURL, Value: raw, Message: "must not carry a query or fragment"}
	}
	return nil
}
