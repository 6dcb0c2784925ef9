package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rdcc/credit-calculator/internal/calculation"
	"github.com/rdcc/credit-calculator/internal/config"
	"github.com/rdcc/credit-calculator/internal/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rdcredit",
		Short: "Estimate the U.S. federal R&D tax credit",
		Long: `rdcredit estimates a business's federal R&D tax credit from an expense
input file: qualified research expenses, the Alternative Simplified Credit,
the §280C election comparison, QSB payroll-offset analysis and pricing/ROI.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("format", "console", "output format: console, json, csv")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("format", root.PersistentFlags().Lookup("format"))
	viper.SetEnvPrefix("RDCREDIT")
	viper.AutomaticEnv()

	root.AddCommand(newCalculateCmd(), newExampleCmd())
	return root
}

func newCalculateCmd() *cobra.Command {
	var inputFile string
	var outFile bool

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the credit calculation over an input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(viper.GetBool("verbose"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			input, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger.Sugar())
			result, err := engine.Calculate(input)
			if err != nil {
				return err
			}

			formatName := output.NormalizeFormatName(viper.GetString("format"))
			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", formatName)
			}

			if outFile {
				filename, err := output.WriteFormatted(formatter, result, formatExtension(formatName))
				if err != nil {
					return err
				}
				logger.Sugar().Infof("report written to %s", filename)
				return nil
			}

			data, err := formatter.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to the YAML input file (required)")
	cmd.Flags().BoolVar(&outFile, "out-file", false, "write a timestamped report file instead of stdout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a starter input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			data, err := yaml.Marshal(parser.CreateExampleInput())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func formatExtension(formatName string) string {
	switch formatName {
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}
