package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/g-m-twostay/repobench/Bench"
	"github.com/g-m-twostay/repobench/Config"
	"github.com/g-m-twostay/repobench/Log"
	"github.com/g-m-twostay/repobench/Metrics"
	"github.com/g-m-twostay/repobench/Repos"
	"github.com/g-m-twostay/repobench/Report"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// flagKeys maps a flag name to its configuration key.
var flagKeys = map[string]string{
	"records":      "records",
	"max-parallel": "max_parallel",
	"strategy":     "strategies",
	"output":       "output",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"push-url":     "metrics.push_url",
	"push-job":     "metrics.job",
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "repobench",
		Usage:   "Benchmark lock-free against lock-based repositories under concurrent add, remove and clear",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"REPOBENCH_CONFIG"},
			},
			&cli.Int64Flag{
				Name:    "records",
				Aliases: []string{"n"},
				Usage:   "Number of records per operation; asked for interactively when unset",
			},
			&cli.IntFlag{
				Name:    "max-parallel",
				Aliases: []string{"p"},
				Usage:   "Maximum number of concurrently running activities",
			},
			&cli.StringSliceFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   "Repository strategy to run, repeatable: " + strings.Join(Repos.Kinds(), ", "),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: " + strings.Join(Report.Formats(), ", "),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text, json",
			},
			&cli.StringFlag{
				Name:  "push-url",
				Usage: "Prometheus Pushgateway URL; metrics are pushed after the suite when set",
			},
			&cli.StringFlag{
				Name:  "push-job",
				Usage: "Pushgateway job name",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List the available strategies and exit",
			},
		},
		Action: run,
	}
}

// setFlags collects the explicitly set flags under their configuration keys.
func setFlags(c *cli.Context) map[string]any {
	out := make(map[string]any)
	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}
		switch name {
		case "records":
			out[key] = c.Int64(name)
		case "max-parallel":
			out[key] = c.Int(name)
		case "strategy":
			out[key] = c.StringSlice(name)
		default:
			out[key] = c.String(name)
		}
	}
	return out
}

func run(c *cli.Context) error {
	if c.Bool("list") {
		for _, k := range Repos.Kinds() {
			fmt.Fprintln(c.App.Writer, k)
		}
		return nil
	}

	cfg, err := Config.NewLoader(Config.WithConfigFile(c.String("config"))).Load(setFlags(c))
	if err != nil {
		return err
	}
	log, err := Log.New(Log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: c.App.ErrWriter})
	if err != nil {
		return err
	}

	con := newConsole(c.App.Reader, c.App.Writer)
	records := cfg.Records
	if cfg.Interactive() {
		if err := con.waitStart(); err != nil {
			return err
		}
		if records, err = con.readRecords(); err != nil {
			return err
		}
	}

	driver := &Bench.Driver{MaxParallel: cfg.MaxParallel, Logger: log}
	var collector *Metrics.Collector
	if cfg.Metrics.PushURL != "" {
		collector = Metrics.New()
		driver.Observer = collector
	}
	log.Info("starting suite", "records", records, "strategies", cfg.Strategies, "max_parallel", cfg.MaxParallel)
	rows, err := driver.Suite(c.Context, records, cfg.Strategies)
	if err != nil {
		return err
	}

	if cfg.Interactive() {
		con.clearScreen()
	}
	if err := Report.Render(c.App.Writer, cfg.Output, Report.Build(rows)); err != nil {
		return err
	}
	if collector != nil {
		if err := collector.Push(c.Context, cfg.Metrics.PushURL, cfg.Metrics.Job); err != nil {
			return err
		}
		log.Info("metrics pushed", "url", cfg.Metrics.PushURL, "job", cfg.Metrics.Job)
	}
	if cfg.Interactive() {
		return con.waitLine()
	}
	return nil
}
