package main

import (
	"fmt"
	"io"
	"os"

	"github.com/standardbeagle/lexmatch/internal/config"
	"github.com/standardbeagle/lexmatch/internal/debug"
	"github.com/standardbeagle/lexmatch/internal/fixture"
	"github.com/standardbeagle/lexmatch/internal/matching"
	"github.com/standardbeagle/lexmatch/internal/semantic"
	"github.com/standardbeagle/lexmatch/internal/version"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lexmatch: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	fixtureFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "fixtures",
			Aliases: []string{"f"},
			Usage:   "Fixture files or glob patterns (e.g., --fixtures 'fixtures/**/*.toml'), defaults to config fixtures.include",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Exclude fixture files matching glob patterns",
		},
		&cli.StringFlag{
			Name:    "strategies",
			Aliases: []string{"s"},
			Usage:   "Comma-separated strategy order (overrides config), e.g. derivation,direct",
		},
	}

	return &cli.App{
		Name:                   "lexmatch",
		Usage:                  "Match annotated search phrases against annotated documents",
		Version:                version.Version,
		Writer:                 out,
		ErrWriter:              errOut,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:  "debug-log",
				Usage: "Write debug output to a log file in the temp directory",
			},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool("debug-log") {
				return nil
			}
			logPath, err := debug.InitDebugLogFile()
			if err != nil {
				return err
			}
			debug.EnableDebug = "true"
			fmt.Fprintf(c.App.ErrWriter, "Debug log: %s\n", logPath)
			return nil
		},
		After: func(c *cli.Context) error {
			return debug.CloseDebugLog()
		},
		Commands: []*cli.Command{
			{
				Name:    "match",
				Aliases: []string{"m"},
				Usage:   "Report every word match of the loaded phrases in the loaded documents",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Phrases matched concurrently (overrides config, 0 = NumCPU)",
						Value:   -1,
					},
					&cli.BoolFlag{
						Name:  "all-phrases",
						Usage: "Match every phrase instead of only index candidates",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				}, fixtureFlags...),
				Action: matchCommand,
			},
			{
				Name:    "index",
				Aliases: []string{"i"},
				Usage:   "Compile the loaded phrases and print their index keys",
				Flags:   fixtureFlags,
				Action:  indexCommand,
			},
			{
				Name:  "version",
				Usage: "Print detailed version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, version.FullInfo())
					return nil
				},
			},
		},
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if patterns := c.StringSlice("fixtures"); len(patterns) > 0 {
		cfg.Fixtures.Include = patterns
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Fixtures.Exclude = append(cfg.Fixtures.Exclude, excludes...)
	}
	if s := c.String("strategies"); s != "" {
		cfg.Matching.Strategies = config.ParseStrategies(s)
	}
	if c.IsSet("workers") {
		cfg.Matching.Workers = c.Int("workers")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCorpus resolves fixture patterns and loads them with the configured annotator
func loadCorpus(cfg *config.Config) (*fixture.Corpus, error) {
	if len(cfg.Fixtures.Include) == 0 {
		return nil, fmt.Errorf("no fixtures given: use --fixtures or fixtures.include in the config")
	}
	paths, err := fixture.Expand(cfg.Fixtures.Include, cfg.Fixtures.Exclude)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixture files match %v", cfg.Fixtures.Include)
	}

	stemmer := semantic.NewStemmer(cfg.Stemming.Enabled, cfg.Stemming.MinLength,
		cfg.Stemming.Exclusions, cfg.Cache.Size)
	return fixture.NewLoader(nil, stemmer).LoadFiles(paths)
}

// compileAll builds the configured matcher and compiles every phrase
func compileAll(cfg *config.Config, corpus *fixture.Corpus) (*matching.Matcher, error) {
	strategies, err := cfg.BuildStrategies()
	if err != nil {
		return nil, err
	}
	m := matching.NewMatcher(cfg.Matching.Workers, strategies...)
	for _, phrase := range corpus.Phrases {
		if err := m.Compile(phrase); err != nil {
			return nil, err
		}
	}
	return m, nil
}
