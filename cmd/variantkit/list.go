package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/variantkit/variantkit/internal/variant"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *appContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listEntry struct {
	Component    string   `json:"component"`
	Axes         []string `json:"axes"`
	Flags        []string `json:"flags,omitempty"`
	Combinations int      `json:"combinations"`
}

func runList(cmd *cobra.Command, app *appContext, opts *listOptions) error {
	entries := make([]listEntry, 0, app.catalog.Len())
	for _, name := range app.catalog.Names() {
		spec, _ := app.catalog.Get(name)

		axes := make([]string, 0, len(spec.Axes))
		for _, axis := range spec.Axes {
			axes = append(axes, axis.Name)
		}
		flags := make([]string, 0, len(spec.Flags))
		for _, flag := range spec.Flags {
			flags = append(flags, flag.Name)
		}

		entries = append(entries, listEntry{
			Component:    name,
			Axes:         axes,
			Flags:        flags,
			Combinations: len(variant.Combinations(spec)),
		})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tAXES\tFLAGS\tCOMBINATIONS")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			entry.Component, joinOrDash(entry.Axes), joinOrDash(entry.Flags), entry.Combinations)
	}
	return w.Flush()
}
