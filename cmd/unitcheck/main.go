package main

import (
	"context"
	"flag"
	"os"
	"time"

	"unitcheck/internal/check"
	"unitcheck/internal/config"
	"unitcheck/internal/exitcodes"
	"unitcheck/internal/logging"
	"unitcheck/internal/metrics"
	"unitcheck/internal/selftest"
	"unitcheck/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to configuration file (defaults apply when empty)")
	demoFailures := flag.Bool("demo-failures", false, "Also run a battery of deliberately failing checks")
	linger := flag.Duration("metrics-linger", 0, "Keep the metrics endpoint up this long after the run")
	flag.Parse()

	logger := logging.New()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Printf("ERROR: Failed to load config: %v", err)
			return exitcodes.InvalidConfig
		}
		cfg = loaded
		logger = logging.NewWithConfig(cfg)
	}

	opts := []check.Option{
		check.WithTerm(term.New(os.Stdout, cfg.ColorMode())),
		check.WithLogger(logger),
	}
	if cfg.Metrics.Port > 0 {
		metrics.Init()
		metrics.StartServer(cfg.MetricsAddress(), logger)
		opts = append(opts, check.WithRecorder(metrics.NewRecorder()))
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			metrics.Shutdown(ctx, logger)
		}()
	}

	c := check.New(opts...)
	logger.Printf("run %s starting", c.RunID())

	selftest.Run(c)
	if *demoFailures {
		selftest.RunFailures(c)
	}
	code := c.Finalize()

	if cfg.Metrics.Port > 0 && *linger > 0 {
		logger.Printf("metrics available on %s for %s", cfg.MetricsAddress(), *linger)
		time.Sleep(*linger)
	}
	return code
}
