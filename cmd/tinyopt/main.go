// Command tinyopt runs pass pipelines over textual IR modules.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tinyopt/tinyopt"
	"github.com/tinyopt/tinyopt/internal/pipelinefile"
	"github.com/tinyopt/tinyopt/ir"
)

var (
	passList     string
	pipelinePath string
	outputPath   string
	verbose      bool
	listPasses   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tinyopt [flags] input.tir",
	Short: "tinyopt runs pass pipelines over textual IR modules",
	Long: `tinyopt parses a textual IR module, resolves a pipeline description
against the registered passes, and runs the pipeline over every
function of the module. Diagnostic output from passes goes to stdout
or to the file named by --output.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&passList, "passes", "",
		"comma-separated pipeline description (e.g. 'hello,print-opcodes')")
	rootCmd.Flags().StringVar(&pipelinePath, "pipeline-file", "",
		"YAML file naming the passes to run, used when --passes is empty")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write pass output to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.Flags().BoolVar(&listPasses, "list", false,
		"list registered passes and exit")
}

func run(cmd *cobra.Command, args []string) error {
	if listPasses {
		for _, info := range tinyopt.DefaultRegistry().Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (v%s)\n", info.Name, info.Version)
		}
		return nil
	}

	pipeline := passList
	if pipeline == "" && pipelinePath != "" {
		f, err := pipelinefile.Load(pipelinePath)
		if err != nil {
			return err
		}
		pipeline = f.Pipeline()
	}
	if pipeline == "" {
		return errors.New("no passes specified: use --passes or --pipeline-file")
	}
	if len(args) != 1 {
		return errors.New("exactly one input module is required")
	}

	m, err := ir.ParseFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	logger.Debug("running pipeline",
		zap.String("passes", pipeline),
		zap.String("module", m.Name),
		zap.Int("functions", len(m.Funcs)))

	return tinyopt.Run(m, pipeline, out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tinyopt:", err)
		os.Exit(1)
	}
}
