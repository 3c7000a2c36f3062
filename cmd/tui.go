package cmd

import (
	"fmt"
	"io"
	"os"

	"shootseeder/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive converter",
	Long: `Start the Terminal User Interface for converting shoot history
CSV exports. Pick a file, choose a layout and write a seed file.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Log lines would tear the alternate screen.
	model := tui.NewModel(tui.Defaults{
		CSVFile:   os.Getenv("SHOOT_CSV"),
		Layout:    os.Getenv("SHOOT_LAYOUT"),
		OutputDir: os.Getenv("SHOOT_OUTPUT_DIR"),
	}, newLogger(io.Discard, logLevel))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
