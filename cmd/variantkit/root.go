package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/variantkit/variantkit/internal/catalog"
	"github.com/variantkit/variantkit/internal/logger"
	"github.com/variantkit/variantkit/internal/variant"
)

type appContext struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

type rootFlags struct {
	verbose bool
}

func newRootCmd(app *appContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "variantkit",
		Short:         "variantkit resolves design-system variants into class tokens and ARIA attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				return nil
			}
			log, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
			if err != nil {
				return err
			}
			app.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newMatrixCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newExploreCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// specFor looks up a component in the catalog so every command reports
// unknown components the same way.
func specFor(app *appContext, component string) (variant.Spec, error) {
	spec, ok := app.catalog.Get(component)
	if !ok {
		return variant.Spec{}, fmt.Errorf("unknown component %q (known: %s)",
			component, strings.Join(app.catalog.Names(), ", "))
	}
	return spec, nil
}
