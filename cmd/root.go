package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/vehicles/app"
	"github.com/kilianp07/vehicles/config"
	"github.com/kilianp07/vehicles/infra/logger"
)

var (
	cfgPath     string
	showMetrics bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vehicles",
		Short: "Run the truck, car and bus demonstration",
		RunE:  run,
	}
	c.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	c.Flags().BoolVar(&showMetrics, "metrics", false, "print event counters after the run")
	return c
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	logg := logger.New("cmd", cmd.ErrOrStderr())
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logg.Errorf("load config %q: %v", cfgPath, err)
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		logg.Errorf("service: %v", err)
		return err
	}
	if showMetrics {
		svc.EnableSummary()
	}
	if err := svc.Run(); err != nil {
		logg.Errorf("run: %v", err)
		return err
	}
	return nil
}
