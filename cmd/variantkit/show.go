package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/variantkit/variantkit/internal/variant"
)

func newShowCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <component>",
		Short: "Show a component's axes, defaults, and flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, app *appContext, component string) error {
	spec, err := specFor(app, component)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "component: %s\n\n", spec.Component)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tVALUES\tDEFAULT\tVARIANT")
	for _, axis := range spec.Axes {
		defaultValue := axis.Default
		if defaultValue == "" {
			defaultValue = "(required)"
		}
		marker := ""
		if variantAxis, ok := spec.VariantAxis(); ok && variantAxis.Name == axis.Name {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", axis.Name, strings.Join(axis.Values, ", "), defaultValue, marker)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	flags := append([]variant.Flag{{Name: variant.FlagDisabled}}, spec.Flags...)
	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FLAG\tARIA")
	for _, flag := range flags {
		fmt.Fprintf(w, "%s\t%s\n", flag.Name, dashIfEmpty(flag.ARIAAttribute()))
	}
	return w.Flush()
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
