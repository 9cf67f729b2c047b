package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/variantkit/variantkit/internal/specfile"
	"github.com/variantkit/variantkit/internal/variant"
)

func newCheckCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate an exported variant spec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app, args[0])
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, app *appContext, path string) error {
	if err := validateCheckPath(path); err != nil {
		return err
	}

	doc, err := specfile.Parse(path)
	if err != nil {
		return err
	}

	app.log.Info(fmt.Sprintf("spec file %s parsed", path))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d component(s) valid\n", doc.Name, len(doc.Components))
	for _, spec := range doc.Specs() {
		fmt.Fprintf(out, "  %s: %d combination(s)\n", spec.Component, len(variant.Combinations(spec)))
	}
	return nil
}

func validateCheckPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("spec file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve spec path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("spec file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("spec path %s is a directory", abs)
	}

	return nil
}
