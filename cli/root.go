// Package cli implements the tourplan command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/va6996/tourplanner/bootstrap"
	"github.com/va6996/tourplanner/config"
	tpcontext "github.com/va6996/tourplanner/context"
)

type runner struct {
	configPath string
	app        *bootstrap.App
}

// newRootCommand assembles the tourplan command tree. The runner must be torn
// down after execution.
func newRootCommand() (*cobra.Command, *runner) {
	r := &runner{}

	root := &cobra.Command{
		Use:   "tourplan",
		Short: "Build, store and print multi-day tour plans",
		Long: `tourplan assembles a tour plan (title, nights, days, start date,
accommodation and a plan per day) from a YAML file, validates it and
optionally stores it.

EXAMPLES:
  # Validate and print a plan
  tourplan build -f alps.yaml

  # Start next week instead of the date in the file, and save it
  tourplan build -f alps.yaml --start "new Date(now + 7*86400000)" --save

  # Browse saved plans
  tourplan list
  tourplan show 3`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	root.PersistentFlags().StringVarP(&r.configPath, "config", "c", config.DefaultPath, "path to the config file")

	root.AddCommand(r.buildCommand())
	root.AddCommand(r.showCommand())
	root.AddCommand(r.listCommand())
	root.AddCommand(r.deleteCommand())
	return root, r
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context) error {
	root, r := newRootCommand()
	defer r.teardown()
	return root.ExecuteContext(ctx)
}

func (r *runner) setup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = tpcontext.WithRequestID(ctx, tpcontext.NewRequestID())

	if cmd.Flags().Changed("config") {
		if _, err := os.Stat(r.configPath); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	cfg, err := config.LoadFile(r.configPath)
	if err != nil {
		return err
	}
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	r.app = app
	cmd.SetContext(ctx)
	return nil
}

func (r *runner) teardown() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil
	return err
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid plan id %q", arg)
	}
	return uint(id), nil
}
