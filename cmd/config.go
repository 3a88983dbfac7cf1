package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invtotal"
	"github.com/google/subcommands"
)

type configCmd struct {
	defaults bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "validate and print the configuration" }
func (*configCmd) Usage() string {
	return `invt config [-default]

  Loads the configuration file set with -config (or INVT_CONFIG) over the
  defaults, validates it and prints the effective configuration as yaml.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.defaults, "default", false, "print the default configuration")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := invtotal.DefaultConfig()
	if !c.defaults {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	b, err := invtotal.EncodeConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	stdout.Write(b)
	return subcommands.ExitSuccess
}
