// Package main provides the CLI entry point for splineplots.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots"
	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
)

var (
	dir        string
	configPath string
	format     string
	workbook   bool
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "splineplots [figure...]",
		Short: "Plot cubic spline interpolations against exact samples",
		Long: `splineplots reads interp.csv, smooth.csv and exact.csv and renders
the comparison figures const.pdf, smoothing.pdf and trigo.pdf.
With no arguments all built-in figures are rendered.`,
		ValidArgs:    []string{splineplots.FigureConst, splineplots.FigureSmoothing, splineplots.FigureTrigo},
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&dir, "dir", "C", ".", "Directory holding the input tables and output figures")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Render the figure described by a JSON config file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format override: pdf, svg, eps")
	rootCmd.Flags().BoolVar(&workbook, "xlsx", false, "Also write the plotted series to an .xlsx workbook")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the built-in figures",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, cfg := range splineplots.Builtins() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s <- %v\n", cfg.Name, cfg.Output, cfg.Tables())
			}
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	outFormat, err := splineplots.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("invalid format: %s (must be pdf, svg, or eps)", format)
	}

	opts := splineplots.DefaultOptions()
	opts.Dir = dir
	opts.Format = outFormat
	opts.Workbook = workbook
	if verbose {
		opts.Logger = log.New(os.Stderr, "", log.Ldate|log.Ltime)
	}

	figures, err := selectFigures(args)
	if err != nil {
		return err
	}

	results, err := splineplots.RenderAll(figures, opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.Path)
		if r.Workbook != "" {
			fmt.Fprintln(cmd.OutOrStdout(), r.Workbook)
		}
	}
	return nil
}

// selectFigures resolves the figures to render from the command line.
func selectFigures(args []string) ([]models.FigureConfig, error) {
	if configPath != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--config cannot be combined with figure names")
		}
		cfg, err := splineplots.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return []models.FigureConfig{cfg}, nil
	}

	if len(args) == 0 {
		return splineplots.Builtins(), nil
	}

	figures := make([]models.FigureConfig, 0, len(args))
	for _, name := range args {
		cfg, err := splineplots.Lookup(name)
		if err != nil {
			return nil, err
		}
		figures = append(figures, cfg)
	}
	return figures, nil
}
