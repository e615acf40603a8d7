package relsql

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCommandTimeout is the command timeout in seconds used when
	// none is configured or the configured value is not an integer.
	DefaultCommandTimeout = 60

	// EnvCommandTimeout overrides the configured command timeout.
	EnvCommandTimeout = "RELSQL_COMMAND_TIMEOUT"
)

// Settings configures an Executor.
type Settings struct {
	// Dialect names the renderer to use, see Lookup.
	Dialect string
	// CommandTimeout is the per-query timeout in seconds. Zero or less
	// disables the timeout.
	CommandTimeout int
}

type settingsFile struct {
	Dialect        string `yaml:"dialect"`
	CommandTimeout string `yaml:"commandTimeout"`
}

// DefaultSettings returns settings with the default command timeout and
// no dialect.
func DefaultSettings() Settings {
	return Settings{CommandTimeout: DefaultCommandTimeout}
}

// ParseCommandTimeout reads a command timeout in seconds, falling back to
// DefaultCommandTimeout when s is empty or not an integer.
func ParseCommandTimeout(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultCommandTimeout
	}
	return n
}

// LoadSettings parses YAML settings from r. An empty document yields the
// defaults. EnvCommandTimeout, when set, replaces the file value.
func LoadSettings(r io.Reader) (Settings, error) {
	var file settingsFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, errors.Wrap(err, "failed to unmarshal settings")
	}

	s := Settings{
		Dialect:        strings.TrimSpace(file.Dialect),
		CommandTimeout: ParseCommandTimeout(file.CommandTimeout),
	}
	if v, ok := os.LookupEnv(EnvCommandTimeout); ok {
		s.CommandTimeout = ParseCommandTimeout(v)
	}
	return s, nil
}

// LoadSettingsFile parses YAML settings from the file at path.
func LoadSettingsFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadSettings(f)
}

// Timeout returns the command timeout as a duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.CommandTimeout) * time.Second
}

// Renderer returns the renderer named by Dialect.
func (s Settings) Renderer() (Renderer, error) {
	if s.Dialect == "" {
		return nil, errors.New("settings: no dialect configured")
	}
	return Lookup(s.Dialect)
}
