package app

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/vehicles/config"
	"github.com/kilianp07/vehicles/core/vehicle"
	"github.com/kilianp07/vehicles/infra/logger"
	"github.com/kilianp07/vehicles/infra/metrics"
)

// Service wires logging, metrics and the fleet for one demo run.
type Service struct {
	Fleet   Fleet
	cfg     *config.Config
	out     io.Writer
	log     logger.Logger
	reg     *prometheus.Registry
	summary bool
}

// New creates a Service writing diagnostics and demo output to out.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	logg, err := logger.NewWithOptions("vehicle", logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    out,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	reg := prometheus.NewRegistry()
	prom, err := metrics.NewPromRecorder(reg)
	if err != nil {
		return nil, fmt.Errorf("prom recorder: %w", err)
	}
	var rec vehicle.Recorder = prom
	if cfg.Logging.Events {
		rec = vehicle.MultiRecorder{prom, logger.EventRecorder{Log: logg}}
	}
	return &Service{
		Fleet:   BuildFleet(*cfg, logg, rec),
		cfg:     cfg,
		out:     out,
		log:     logg,
		reg:     reg,
		summary: cfg.Metrics.Summary,
	}, nil
}

// EnableSummary prints the event counters after Run.
func (s *Service) EnableSummary() { s.summary = true }

// Run executes the demo script.
func (s *Service) Run() error {
	demo := Demo{Out: s.out, Cargo: s.cfg.Truck.Cargo}
	if err := demo.Run(s.Fleet.Vehicles()); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	s.log.Infof("demo finished for %d vehicles", len(s.Fleet.Vehicles()))
	if !s.summary {
		return nil
	}
	return s.printSummary()
}

func (s *Service) printSummary() error {
	samples, err := metrics.Summarize(s.reg)
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	if _, err := fmt.Fprintln(s.out, "\n=== EVENTS ==="); err != nil {
		return err
	}
	for _, sm := range samples {
		if _, err := fmt.Fprintf(s.out, "%-6s %-17s %-9s %g\n", sm.VehicleType, sm.Operation, sm.Outcome, sm.Value); err != nil {
			return err
		}
	}
	return nil
}
