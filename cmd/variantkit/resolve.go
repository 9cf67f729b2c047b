package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/variantkit/variantkit/internal/variant"
)

type resolveOptions struct {
	sets       []string
	flags      []string
	state      string
	jsonOutput bool
}

func newResolveCmd(app *appContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve a configuration into class tokens and ARIA attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Axis value as axis=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.flags, "flag", nil, "Flag to enable (repeatable)")
	cmd.Flags().StringVar(&opts.state, "state", "rest", "Interaction state (rest, hover, focus, active, disabled)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type resolveOutput struct {
	Component string            `json:"component"`
	State     string            `json:"state"`
	Classes   []string          `json:"classes"`
	Class     string            `json:"class"`
	ARIA      map[string]string `json:"aria,omitempty"`
}

func runResolve(cmd *cobra.Command, app *appContext, component string, opts *resolveOptions) error {
	spec, err := specFor(app, component)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(opts.sets, opts.flags)
	if err != nil {
		return err
	}

	state, err := variant.ParseState(opts.state)
	if err != nil {
		return err
	}

	desc, err := variant.Resolve(spec, cfg, state)
	if err != nil {
		return err
	}

	app.log.WithComponent(component).Debug("resolved", map[string]any{
		"state":   state.String(),
		"classes": len(desc.Classes),
	})

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolveOutput{
			Component: component,
			State:     state.String(),
			Classes:   desc.Classes,
			Class:     desc.ClassString(),
			ARIA:      desc.ARIA,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "class: %s\n", desc.ClassString())
	for _, attrName := range desc.ARIAKeys() {
		fmt.Fprintf(out, "%s=%q\n", attrName, desc.ARIA[attrName])
	}
	return nil
}

func buildConfig(sets, flags []string) (variant.Config, error) {
	cfg := variant.NewConfig()
	for _, pair := range sets {
		axis, value, found := strings.Cut(pair, "=")
		if !found || axis == "" || value == "" {
			return variant.Config{}, fmt.Errorf("invalid --set %q: expected axis=value", pair)
		}
		cfg = cfg.Set(axis, value)
	}
	for _, flag := range flags {
		if flag == "" {
			return variant.Config{}, fmt.Errorf("invalid --flag: name is empty")
		}
		cfg = cfg.Enable(flag)
	}
	return cfg, nil
}
