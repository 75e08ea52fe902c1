package runner

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Sentinel errors for command-line handling.
var (
	// ErrUsage indicates the wrong number of positional arguments.
	ErrUsage = errors.New("runner: usage: [verbosity] part")
	// ErrVerbosity indicates a verbosity level other than 0, 1 or 2.
	ErrVerbosity = errors.New("runner: invalid verbosity level")
	// ErrPart indicates a part other than 1 or 2.
	ErrPart = errors.New("runner: unknown part")
)

// Config selects the part to solve and how much to log.
type Config struct {
	// Verbosity is 0 (warn), 1 (info) or 2 (debug).
	Verbosity int `env:"AOC_VERBOSITY" envDefault:"0"`
	// Part is 1 or 2.
	Part int `env:"AOC_PART"`
}

// LoadConfig builds a Config from, in increasing priority: envFiles (".env"
// when none are given, missing files are skipped), process environment, and
// the positional arguments [verbosity] part.
func LoadConfig(args []string, envFiles ...string) (Config, error) {
	var cfg Config

	// 1. Optional dotenv files; they never override the process environment
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("runner: load env file: %w", err)
	}
	// 2. Environment variables
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("runner: parse env: %w", err)
	}
	// 3. Positional arguments
	flags := flag.NewFlagSet("aoc", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	if err := flags.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	pos := flags.Args()
	switch len(pos) {
	case 0:
	case 1:
		part, err := strconv.Atoi(pos[0])
		if err != nil {
			return cfg, fmt.Errorf("%w: %q", ErrPart, pos[0])
		}
		cfg.Part = part
	case 2:
		verbosity, err := strconv.Atoi(pos[0])
		if err != nil {
			return cfg, fmt.Errorf("%w: %q", ErrVerbosity, pos[0])
		}
		part, err := strconv.Atoi(pos[1])
		if err != nil {
			return cfg, fmt.Errorf("%w: %q", ErrPart, pos[1])
		}
		cfg.Verbosity, cfg.Part = verbosity, part
	default:
		return cfg, fmt.Errorf("%w: got %d arguments", ErrUsage, len(pos))
	}

	return cfg, cfg.Validate()
}

// Validate checks the verbosity and part ranges.
func (c Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("%w: %d", ErrVerbosity, c.Verbosity)
	}
	if c.Part != 1 && c.Part != 2 {
		return fmt.Errorf("%w: %d", ErrPart, c.Part)
	}
	return nil
}
