package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/variantkit/variantkit/internal/variant"
)

type matrixOptions struct {
	states []string
}

func newMatrixCmd(app *appContext) *cobra.Command {
	opts := &matrixOptions{}

	cmd := &cobra.Command{
		Use:   "matrix <component>",
		Short: "Print every combination of axis values across interaction states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.states, "states", nil,
		"Interaction states to include (default: all)")

	return cmd
}

func runMatrix(cmd *cobra.Command, app *appContext, component string, opts *matrixOptions) error {
	spec, err := specFor(app, component)
	if err != nil {
		return err
	}

	states, err := matrixStates(opts.states)
	if err != nil {
		return err
	}

	width := terminalWidth()
	combos := variant.Combinations(spec)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	header := make([]string, 0, len(spec.Axes)+len(states))
	for _, axis := range spec.Axes {
		header = append(header, strings.ToUpper(axis.Name))
	}
	for _, state := range states {
		header = append(header, strings.ToUpper(state.String()))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, cfg := range combos {
		row := make([]string, 0, len(header))
		for _, axis := range spec.Axes {
			value, _ := cfg.Value(axis.Name)
			row = append(row, value)
		}
		for _, state := range states {
			desc, err := variant.Resolve(spec, cfg, state)
			if err != nil {
				return err
			}
			row = append(row, truncate(desc.ClassString(), cellWidth(width, len(header))))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func matrixStates(names []string) ([]variant.InteractionState, error) {
	if len(names) == 0 {
		return variant.States(), nil
	}

	states := make([]variant.InteractionState, 0, len(names))
	for _, name := range names {
		state, err := variant.ParseState(name)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

// terminalWidth reports the attached terminal width, or 0 when output is
// not a terminal (no truncation then).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func cellWidth(total, columns int) int {
	if total == 0 || columns == 0 {
		return 0
	}
	width := total/columns - 2
	if width < 12 {
		width = 12
	}
	return width
}

func truncate(s string, max int) string {
	if max == 0 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
