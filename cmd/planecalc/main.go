package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "planecalc",
		Short:         "Model-aircraft balance point and planform calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	logger := func() *log.Logger {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		return log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           level,
		})
	}

	rootCmd.AddCommand(analyzeCmd(logger))
	rootCmd.AddCommand(validateCmd(logger))
	rootCmd.AddCommand(svgCmd(logger))
	rootCmd.AddCommand(reportCmd(logger))
	rootCmd.AddCommand(serveCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func analyzeCmd(logger func() *log.Logger) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analyze [project-path]",
		Short: "Compute surface geometry, balance point, and CG target",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(logger(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON")
	return cmd
}

func validateCmd(logger func() *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate an aircraft spec without printing the full analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(logger(), args[0])
		},
	}
}

func svgCmd(logger func() *log.Logger) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "svg [project-path]",
		Short: "Draw the planform with NP and CG markers as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSVG(logger(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "planform.svg", "output file, or - for stdout")
	return cmd
}

func reportCmd(logger func() *log.Logger) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "report [project-path]",
		Short: "Generate a PDF balance report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReport(logger(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "balance.pdf", "output file")
	return cmd
}

func serveCmd(logger func() *log.Logger) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve the analysis and planform drawing over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(logger(), args[0], port)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides planecalc.toml)")
	return cmd
}
