// Package cmd implements the invt CLI application to replay and inspect
// inventory total sessions.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/invtotal"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replayCmd{}, "sessions")
	c.Register(&valueCmd{}, "sessions")

	c.Register(&abbrevCmd{}, "tools")
	c.Register(&configCmd{}, "tools")
	c.Register(&fmtCmd{}, "tools")

	c.Register(&topicCmd{}, "documentation")
}

const (
	EnvConfigFile = "INVT_CONFIG"
	EnvPriceFile  = "INVT_PRICES"
	EnvLogLevel   = "INVT_LOG_LEVEL"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the yaml configuration file, "+EnvConfigFile+" by default")
var priceFile = flag.String("prices", "", "Path to the JSON price file, "+EnvPriceFile+" by default")
var pricePath = flag.String("prices-path", invtotal.DefaultPricePath, "JSONPath selecting the price entries in the price file")
var rawOutput = flag.Bool("raw", false, "print raw markdown instead of rendering it for the terminal")

// stdout is where commands print their reports.
var stdout io.Writer = os.Stdout

// LoadConfig loads the app configuration, falling back to the defaults when
// no configuration file is set or found.
func LoadConfig() (invtotal.Config, error) {
	path := flagOrEnv(*configFile, EnvConfigFile)
	if path == "" {
		return invtotal.DefaultConfig(), nil
	}
	cfg, err := invtotal.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning, configuration %q does not exist, using defaults\n", path)
		return invtotal.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadPrices loads the app price table. Without a price file only coins have
// a value.
func LoadPrices() (*invtotal.PriceTable, error) {
	path := flagOrEnv(*priceFile, EnvPriceFile)
	if path == "" {
		return invtotal.NewPriceTable(), nil
	}
	return invtotal.LoadPriceFile(path, *pricePath)
}

// flagOrEnv returns the flag value, or the environment variable when the flag is not set.
func flagOrEnv(value, env string) string {
	if value != "" {
		return value
	}
	return os.Getenv(env)
}

// NewLogger creates the development logger, writing to stderr at the level
// set in INVT_LOG_LEVEL, "warn" by default.
func NewLogger() (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if s := os.Getenv(EnvLogLevel); s != "" {
		var err error
		if level, err = zapcore.ParseLevel(s); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// printMarkdown prints md to stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
