// Package config resolves where rosters and attendance history live.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// ATTENDANCE_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is looked up in the working directory when no --config
	// flag is given.
	DefaultFile = "attendance.yaml"

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "ATTENDANCE_"

	defaultMembersDir     = "member-lists"
	defaultAttendanceFile = "attendance-lists/attendance-list.json"
)

// Config holds the runtime settings.
type Config struct {
	// DataDir anchors relative MembersDir and AttendanceFile paths.
	DataDir        string `yaml:"data_dir" env:"DATA_DIR, overwrite"`
	MembersDir     string `yaml:"members_dir" env:"MEMBERS_DIR, overwrite"`
	AttendanceFile string `yaml:"attendance_file" env:"ATTENDANCE_FILE, overwrite"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL, overwrite"`

	// LogFile, when set, receives logs instead of stderr.
	LogFile string `yaml:"log_file" env:"LOG_FILE, overwrite"`

	// Theme is one of classic, neon or mono.
	Theme string `yaml:"theme" env:"THEME, overwrite"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:        ".",
		MembersDir:     defaultMembersDir,
		AttendanceFile: defaultAttendanceFile,
		LogLevel:       "warn",
		Theme:          "classic",
	}
}

// Load builds a Config from defaults, the YAML file at path and the process
// environment. An empty path means DefaultFile, which may be absent; an
// explicit path must exist.
func Load(ctx context.Context, path string) (*Config, error) {
	return LoadWith(ctx, path, envconfig.OsLookuper())
}

// LoadWith is Load with a custom environment lookuper.
func LoadWith(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := Default()

	required := path != ""
	if path == "" {
		path = DefaultFile
	}
	if err := cfg.loadFile(path, required); err != nil {
		return nil, err
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// MembersPath returns the directory that holds roster files.
func (c *Config) MembersPath() string {
	return c.resolve(c.MembersDir)
}

// AttendancePath returns the shared attendance file.
func (c *Config) AttendancePath() string {
	return c.resolve(c.AttendanceFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}
