package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/invtotal"
	"github.com/google/subcommands"
)

type abbrevCmd struct {
	exact   bool
	compact bool
}

func (*abbrevCmd) Name() string     { return "abbrev" }
func (*abbrevCmd) Synopsis() string { return "format gp amounts the way the overlay does" }
func (*abbrevCmd) Usage() string {
	return `invt abbrev [-exact] [-compact] <value>...

  Prints each value abbreviated (1.2B, 999K, -1.5M), or exact with thousand separators.
`
}

func (c *abbrevCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.exact, "exact", false, "print exact values with thousand separators")
	f.BoolVar(&c.compact, "compact", false, "drop the trailing .0 of abbreviations")
}

func (c *abbrevCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: abbrev requires at least one value")
		return subcommands.ExitUsageError
	}
	for _, arg := range f.Args() {
		v, err := strconv.ParseInt(strings.ReplaceAll(arg, "_", ""), 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(stdout, c.format(v))
	}
	return subcommands.ExitSuccess
}

func (c *abbrevCmd) format(v int64) string {
	switch {
	case c.exact:
		return invtotal.Exact(v)
	case c.compact:
		return invtotal.Compact(v)
	default:
		return invtotal.Abbreviate(v)
	}
}
