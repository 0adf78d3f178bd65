package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the building file.
const (
	EnvFloors    = "ELEVSIM_FLOORS"
	EnvElevators = "ELEVSIM_ELEVATORS"
	EnvLogLevel  = "ELEVSIM_LOG_LEVEL"
)

// Building describes the simulated building. Floors are numbered 1..Floors.
type Building struct {
	Floors    int    `yaml:"floors"`
	Elevators int    `yaml:"elevators"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Building {
	return Building{
		Floors:    DefaultFloorCount,
		Elevators: DefaultElevatorCount,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML building file on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Building, error) {
	b := Default()
	if path == "" {
		return b, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return b, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return b, fmt.Errorf("decoding %s: %w", path, err)
	}
	return b, b.Validate()
}

// ApplyEnv overrides fields from the process environment and, when envFile is
// set, from that dotenv file. Process environment wins over the file.
func (b *Building) ApplyEnv(envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", envFile, err)
		}
		vars = fileVars
	}
	for _, key := range []string{EnvFloors, EnvElevators, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if v, ok := vars[EnvFloors]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFloors, err)
		}
		b.Floors = n
	}
	if v, ok := vars[EnvElevators]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvElevators, err)
		}
		b.Elevators = n
	}
	if v, ok := vars[EnvLogLevel]; ok {
		b.LogLevel = strings.TrimSpace(v)
	}
	return b.Validate()
}

func (b Building) Validate() error {
	if b.Floors < 2 {
		return fmt.Errorf("building needs at least 2 floors, got %d", b.Floors)
	}
	if b.Elevators < 0 {
		return fmt.Errorf("negative elevator count %d", b.Elevators)
	}
	if _, err := b.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto a slog level. Empty means info.
func (b Building) Level() (slog.Level, error) {
	var level slog.Level
	if b.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(b.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", b.LogLevel, err)
	}
	return level, nil
}
