package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/etnz/invtotal"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	ignore    string
	useConfig bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "valuate a container snapshot" }
func (*valueCmd) Usage() string {
	return `invt value [-ignore <items>] [-use-config] <container.json>

  Prints the value and quantity of each item of a container snapshot, a JSON
  list of {"id": <item>, "qty": <quantity>}, and their total.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ignore, "ignore", "", "comma separated list of item names to ignore")
	f.BoolVar(&c.useConfig, "use-config", false, "ignore the items listed in the configuration")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: value requires exactly one container file")
		return subcommands.ExitUsageError
	}

	ignored := c.ignore
	if c.useConfig {
		cfg, err := LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			return subcommands.ExitFailure
		}
		ignored = cfg.IgnoredItems
	}

	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	container, err := readContainer(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading container: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(containerMarkdown(container, invtotal.ParseIgnoreSet(ignored), prices))
	return subcommands.ExitSuccess
}

func readContainer(path string) (invtotal.Container, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c invtotal.Container
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// containerMarkdown renders one row per item, ignored items included but
// marked, and the total.
func containerMarkdown(c invtotal.Container, ignore invtotal.IgnoreSet, catalog invtotal.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Container Value")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Item", "Quantity", "Unit Price", "Value"},
	}
	qtys := c.Quantities()
	for _, id := range slices.Sorted(maps.Keys(qtys)) {
		qty := qtys[id]
		name := catalog.Name(id)
		if name == "" {
			name = fmt.Sprintf("Item %d", id)
		}
		single := invtotal.Container{{ID: id, Quantity: qty}}
		value := invtotal.Valuate(single, ignore, catalog).Value
		if ignore.Contains(name) {
			name += " (ignored)"
		}
		table.Rows = append(table.Rows, []string{
			name,
			invtotal.GroupQuantity(qty),
			invtotal.Exact(invtotal.Valuate(invtotal.Container{{ID: id, Quantity: 1}}, nil, catalog).Value),
			invtotal.Exact(value),
		})
	}
	total := invtotal.Valuate(c, ignore, catalog)
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(invtotal.GroupQuantity(total.Quantity)),
		"",
		md.Bold(invtotal.Exact(total.Value)),
	})
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Abbreviated: %s", invtotal.Abbreviate(total.Value)))
	return doc.String()
}
