// Command fxinfo prints the parameters of the available effect types.
//
// Usage:
//
//	fxinfo [flags] [effect-type ...]
//
// Without arguments it prints every registered effect.
//
// Examples:
//
//	fxinfo peak-limiter
//	fxinfo -list
//	fxinfo -preset high-pass > hp.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fxhost/dsp/fxnode"
	"github.com/cwbudde/algo-fxhost/dsp/host"
)

func main() {
	list := flag.Bool("list", false, "list available effect types")
	preset := flag.Bool("preset", false, "print a default JSON preset for each effect")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxinfo [flags] [effect-type ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints parameter ranges of the built-in effects.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxinfo peak-limiter\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -list\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -preset high-pass\n")
	}
	flag.Parse()

	reg := fxnode.DefaultRegistry()

	if *list {
		printList(os.Stdout, reg)
		return
	}

	descs := resolveDescriptors(reg, flag.Args())
	if len(descs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching effect types\n")
		os.Exit(1)
	}

	if *preset {
		err := printPresets(os.Stdout, descs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	err := printParams(os.Stdout, descs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer, reg *fxnode.Registry) {
	for _, t := range reg.Types() {
		desc, _ := reg.Lookup(t)
		fmt.Fprintf(w, "%s\t%s\n", t, desc.Name)
	}
}

func resolveDescriptors(reg *fxnode.Registry, names []string) []fxnode.Descriptor {
	if len(names) == 0 {
		names = reg.Types()
	}

	var result []fxnode.Descriptor
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		desc, ok := reg.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown effect %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, desc)
	}
	return result
}

func printParams(w io.Writer, descs []fxnode.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Effect\tID\tParameter\tMin\tMax\tDefault\tUnit\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t--\t---------\t---\t---\t-------\t----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, d := range descs {
		for _, s := range d.Params {
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%g\t%g\t%g\t%s\n",
				d.Type, s.ID, s.Name, s.Min, s.Max, s.Default, s.Unit); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}

	return tw.Flush()
}

// printPresets writes the preset a freshly created node would snapshot.
func printPresets(w io.Writer, descs []fxnode.Descriptor) error {
	for _, d := range descs {
		bus := host.NewBus()
		node, err := fxnode.New(d, fxnode.Collaborators{
			Processor: host.NewParamTable(),
			Dry:       bus.Dry,
			Wet:       bus.Wet,
		})
		if err != nil {
			return err
		}

		data, err := node.Snapshot().Marshal()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}
