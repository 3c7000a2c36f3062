package cmd

import (
	"fmt"
	"io"

	"shootseeder/internal/output"
	"shootseeder/internal/seed"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	csvFile    string
	layoutName string
	formatName string
	zeroValue  string
	nullDates  bool
	outputDir  string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a shoot history CSV to seed JSON",
	Long: `Convert a shoot history CSV to seed JSON.

Layouts:
  clients  unique clients only
  history  {"clients": [...], "shoots": [...]}
  shoots   shoots only, with a total on stderr`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "Shoot history CSV file (required)")
	convertCmd.Flags().StringVarP(&layoutName, "layout", "l", string(seed.LayoutHistory), "Output layout: clients, history or shoots")
	convertCmd.Flags().StringVarP(&formatName, "format", "f", string(output.FormatJSON), "Output format: json or extjson")
	convertCmd.Flags().StringVar(&zeroValue, "zero", "", "Placeholder for empty money values (layout default if empty)")
	convertCmd.Flags().BoolVar(&nullDates, "null-dates", false, "Render empty dates as null (layout default if unset)")
	convertCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write a timestamped file here instead of stdout")

	convertCmd.MarkFlagRequired("csv")
}

type convertConfig struct {
	CSVFile   string
	Format    output.Format
	Options   seed.Options
	OutputDir string
}

func runConvert(cmd *cobra.Command, args []string) error {
	layout, err := seed.ParseLayout(layoutName)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := seed.DefaultOptions(layout)
	if cmd.Flags().Changed("null-dates") {
		opts.NullDates = nullDates
	}
	if zeroValue != "" {
		opts.Zero = zeroValue
	}

	return convert(convertConfig{
		CSVFile:   csvFile,
		Format:    format,
		Options:   opts,
		OutputDir: outputDir,
	}, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// convert prints nothing to stdout unless the whole conversion succeeded.
func convert(cfg convertConfig, stdout, stderr io.Writer, logger *log.Logger) error {
	result, err := seed.NewConverter(cfg.Options, logger).ConvertFile(cfg.CSVFile)
	if err != nil {
		return err
	}

	writer := output.NewWriter(cfg.Format)
	if cfg.OutputDir != "" {
		path, err := writer.WriteFile(cfg.OutputDir, result)
		if err != nil {
			return fmt.Errorf("failed to write seed file: %w", err)
		}
		logger.Info("wrote seed file", "path", path)
		fmt.Fprintln(stdout, path)
	} else if err := writer.Write(stdout, result); err != nil {
		return err
	}

	if line, ok := output.Summary(result); ok {
		fmt.Fprintln(stderr, line)
	}
	return nil
}
