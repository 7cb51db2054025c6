// Command clonedetect finds large-variance function-level code clones in a
// source tree: tokenize, index by n-gram overlap, verify candidate pairs by
// longest common subsequence, and report the accepted pairs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/clonedetect/internal/config"
	clonedetecterrors "github.com/standardbeagle/clonedetect/internal/errors"
	"github.com/standardbeagle/clonedetect/internal/pipeline"
	"github.com/standardbeagle/clonedetect/internal/preprocess"
	"github.com/standardbeagle/clonedetect/internal/report"
)

func main() {
	app := &cli.App{
		Name:                   "clonedetect",
		Usage:                  "detect large-variance function-level code clones",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   ".clonedetect.kdl",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "source tree root (overrides config)",
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "language to scan: java, c, cpp, csharp, python, kotlin (overrides config)",
			},
			&cli.IntFlag{
				Name:  "n",
				Usage: "n-gram size (overrides config)",
			},
			&cli.IntFlag{
				Name:  "min-line",
				Usage: "minimum function length in lines (overrides config)",
			},
			&cli.IntFlag{
				Name:  "min-token",
				Usage: "minimum function length in tokens (overrides config)",
			},
			&cli.IntFlag{
				Name:  "partitions",
				Usage: "inverted index partition count (overrides config)",
			},
			&cli.IntFlag{
				Name:  "filtration-threshold",
				Usage: "n-gram filtration threshold percent (overrides config)",
			},
			&cli.IntFlag{
				Name:  "verification-threshold",
				Usage: "LCS verification threshold percent (overrides config)",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "worker pool size (overrides config)",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "include files matching glob patterns",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "exclude files matching glob patterns",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "report format: console or json (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored console output",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clonedetecterrors.ExitCodeFor(err))
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pre, err := preprocess.Run(cfg)
	if err != nil {
		return err
	}

	if err := pipeline.Run(ctx, cfg, pre.Corpus); err != nil {
		return err
	}

	pairs, err := report.Load(cfg.PairsOut, cfg.BlocksOut)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		return report.RenderJSON(pairs, os.Stdout)
	default:
		colored := !c.Bool("no-color")
		return report.RenderConsole(pairs, os.Stdout, colored)
	}
}

// loadConfigWithOverrides loads the KDL config and layers the corresponding
// CLI flags on top, mirroring the reference indexer's override pattern.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if root := c.String("root"); root != "" {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, clonedetecterrors.NewConfigError("resolve root flag", err)
		}
		cfg.Root = absRoot
	}
	if lang := c.String("language"); lang != "" {
		cfg.Language = config.Language(lang)
	}
	if c.IsSet("n") {
		cfg.N = c.Int("n")
	}
	if c.IsSet("min-line") {
		cfg.MinLine = c.Int("min-line")
	}
	if c.IsSet("min-token") {
		cfg.MinToken = c.Int("min-token")
	}
	if c.IsSet("partitions") {
		cfg.PartitionCount = c.Int("partitions")
	}
	if c.IsSet("filtration-threshold") {
		cfg.FiltrationThreshold = c.Int("filtration-threshold")
	}
	if c.IsSet("verification-threshold") {
		cfg.VerificationThreshold = c.Int("verification-threshold")
	}
	if c.IsSet("threads") {
		cfg.Threads = c.Int("threads")
	}
	if include := c.StringSlice("include"); len(include) > 0 {
		cfg.Include = include
	}
	if exclude := c.StringSlice("exclude"); len(exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, exclude...)
	}
	if format := c.String("format"); format != "" {
		cfg.Format = format
	}

	return cfg, nil
}
