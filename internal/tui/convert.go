package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shootseeder/internal/output"
	"shootseeder/internal/seed"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const defaultOutputDir = "./seeds"

type ConvertState int

const (
	ConvertInputState ConvertState = iota
	ConvertFileSelectState
	ConvertRunningState
	ConvertResultState
)

type ConvertResult struct {
	Layout seed.Layout
	Stats  seed.Stats
	Path   string
	Error  error
}

type ConvertCompleteMsg struct {
	Result ConvertResult
}

type ConvertModel struct {
	state          ConvertState
	csvFileInput   textinput.Model
	layoutInput    textinput.Model
	outputDirInput textinput.Model
	focusedInput   int
	result         ConvertResult
	files          []string
	selectedFile   int
	logger         *log.Logger
	width          int
	height         int
}

func NewConvertModel(defaults Defaults, logger *log.Logger) *ConvertModel {
	csvInput := textinput.New()
	csvInput.Placeholder = "path/to/shoot-history.csv"
	csvInput.SetValue(defaults.CSVFile)
	csvInput.Focus()

	layoutInput := textinput.New()
	layoutInput.Placeholder = string(seed.LayoutHistory)
	layoutInput.SetValue(valueOr(defaults.Layout, string(seed.LayoutHistory)))

	outputDirInput := textinput.New()
	outputDirInput.Placeholder = defaultOutputDir
	outputDirInput.SetValue(valueOr(defaults.OutputDir, defaultOutputDir))

	return &ConvertModel{
		state:          ConvertInputState,
		csvFileInput:   csvInput,
		layoutInput:    layoutInput,
		outputDirInput: outputDirInput,
		logger:         logger,
	}
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func (m *ConvertModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConvertModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// AtForm reports whether Esc should leave the screen rather than being
// handled here.
func (m *ConvertModel) AtForm() bool {
	return m.state == ConvertInputState || m.state == ConvertResultState
}

func (m *ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case ConvertInputState:
			return m.updateInputState(msg)
		case ConvertFileSelectState:
			return m.updateFileSelectState(msg)
		case ConvertRunningState:
			return m, nil
		case ConvertResultState:
			if msg.String() == "enter" || msg.String() == " " {
				m.reset()
				return m, nil
			}
		}

	case ConvertCompleteMsg:
		m.result = msg.Result
		m.state = ConvertResultState
		return m, nil
	}

	return m, nil
}

func (m *ConvertModel) inputs() []*textinput.Model {
	return []*textinput.Model{&m.csvFileInput, &m.layoutInput, &m.outputDirInput}
}

func (m *ConvertModel) updateInputState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	count := len(m.inputs())

	switch msg.String() {
	case "tab", "down":
		m.focusedInput = (m.focusedInput + 1) % count
		m.updateInputFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusedInput = (m.focusedInput - 1 + count) % count
		m.updateInputFocus()
		return m, nil
	case "ctrl+f":
		return m.browseFiles()
	case "enter":
		if err := m.validate(); err != nil {
			return m, ShowError(err)
		}
		m.state = ConvertRunningState
		return m, m.performConvert()
	}

	input := m.inputs()[m.focusedInput]
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m *ConvertModel) updateFileSelectState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedFile > 0 {
			m.selectedFile--
		}
	case "down", "j":
		if m.selectedFile < len(m.files)-1 {
			m.selectedFile++
		}
	case "enter":
		if len(m.files) > 0 {
			m.csvFileInput.SetValue(m.files[m.selectedFile])
			m.state = ConvertInputState
		}
	case "esc":
		m.state = ConvertInputState
	}
	return m, nil
}

func (m *ConvertModel) browseFiles() (tea.Model, tea.Cmd) {
	cwd, err := os.Getwd()
	if err != nil {
		return m, ShowError(err)
	}
	files, err := filepath.Glob(filepath.Join(cwd, "*.csv"))
	if err != nil {
		return m, ShowError(err)
	}

	for i, file := range files {
		if rel, err := filepath.Rel(cwd, file); err == nil {
			files[i] = rel
		}
	}

	m.files = files
	m.selectedFile = 0
	m.state = ConvertFileSelectState
	return m, nil
}

func (m *ConvertModel) updateInputFocus() {
	for i, input := range m.inputs() {
		if i == m.focusedInput {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m *ConvertModel) validate() error {
	if strings.TrimSpace(m.csvFileInput.Value()) == "" {
		return fmt.Errorf("CSV file is required")
	}
	if strings.TrimSpace(m.outputDirInput.Value()) == "" {
		return fmt.Errorf("output directory is required")
	}
	_, err := seed.ParseLayout(m.layoutInput.Value())
	return err
}

func (m *ConvertModel) performConvert() tea.Cmd {
	csvFile := strings.TrimSpace(m.csvFileInput.Value())
	outputDir := strings.TrimSpace(m.outputDirInput.Value())
	layoutName := m.layoutInput.Value()
	logger := m.logger

	return func() tea.Msg {
		var result ConvertResult

		layout, err := seed.ParseLayout(layoutName)
		if err != nil {
			result.Error = err
			return ConvertCompleteMsg{Result: result}
		}
		result.Layout = layout

		converted, err := seed.NewConverter(seed.DefaultOptions(layout), logger).ConvertFile(csvFile)
		if err != nil {
			result.Error = err
			return ConvertCompleteMsg{Result: result}
		}
		result.Stats = converted.Stats

		path, err := output.NewWriter(output.FormatJSON).WriteFile(outputDir, converted)
		if err != nil {
			result.Error = fmt.Errorf("failed to write seed file: %w", err)
			return ConvertCompleteMsg{Result: result}
		}
		result.Path = path

		return ConvertCompleteMsg{Result: result}
	}
}

func (m *ConvertModel) reset() {
	m.state = ConvertInputState
	m.result = ConvertResult{}
	m.csvFileInput.SetValue("")
	m.focusedInput = 0
	m.updateInputFocus()
}

func (m *ConvertModel) View() string {
	switch m.state {
	case ConvertInputState:
		return m.renderInputForm()
	case ConvertFileSelectState:
		return m.renderFileSelector()
	case ConvertRunningState:
		return m.renderRunning()
	case ConvertResultState:
		return m.renderResult()
	}
	return ""
}

func (m *ConvertModel) renderInputForm() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("📥 Convert Shoot History")

	layouts := make([]string, 0, 3)
	for _, l := range seed.Layouts() {
		layouts = append(layouts, string(l))
	}

	form := adaptiveFormStyle.Render(
		labelStyle.Render("CSV File:") + "\n" + m.csvFileInput.View() + "\n\n" +
			labelStyle.Render("Layout ("+strings.Join(layouts, ", ")+"):") + "\n" + m.layoutInput.View() + "\n\n" +
			labelStyle.Render("Output Directory:") + "\n" + m.outputDirInput.View(),
	)

	help := adaptiveHelpStyle.Render("Tab/Shift+Tab: Navigate • Ctrl+F: Browse files • Enter: Convert • Esc: Back to menu")

	content := lipgloss.JoinVertical(lipgloss.Left, title, form, help)

	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Top,
			content,
		)
	}

	return content
}

func (m *ConvertModel) renderFileSelector() string {
	title := titleStyle.Render("📁 Select CSV File")

	if len(m.files) == 0 {
		content := warningStyle.Render("No CSV files found in current directory")
		help := helpStyle.Render("Esc: Back to form")
		return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
	}

	var fileList string
	for i, file := range m.files {
		cursor := " "
		style := menuItemStyle
		if i == m.selectedFile {
			cursor = ">"
			style = selectedMenuItemStyle
		}
		fileList += fmt.Sprintf("%s %s\n", cursor, style.Render(file))
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • Esc: Cancel")

	return lipgloss.JoinVertical(lipgloss.Left, title, fileList, help)
}

func (m *ConvertModel) renderRunning() string {
	adaptiveTitleStyle, _, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("📥 Converting...")
	help := adaptiveHelpStyle.Render("Please wait while the file is converted...")

	result := lipgloss.JoinVertical(lipgloss.Left, title, help)
	if m.width > 0 && m.height > 0 {
		result = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			result,
		)
	}
	return result
}

func (m *ConvertModel) renderResult() string {
	title := titleStyle.Render("📥 Conversion Complete")

	if m.result.Error != nil {
		status := errorStyle.Render(fmt.Sprintf("❌ Conversion failed: %v", m.result.Error))
		help := helpStyle.Render("Enter: Try again • Esc: Back to menu")
		return lipgloss.JoinVertical(lipgloss.Left, title, status, help)
	}

	status := successStyle.Render("✅ Wrote " + m.result.Path)
	s := m.result.Stats

	stats := fmt.Sprintf(
		"📊 %s layout:\n"+
			"   Rows read: %d\n"+
			"   Clients: %d\n"+
			"   Shoots: %d\n"+
			"   Skipped (no email): %d\n"+
			"   Repeat client rows: %d\n"+
			"   Total quoted: %s\n"+
			"   Total paid: %s",
		m.result.Layout,
		s.Rows,
		s.Clients,
		s.Shoots,
		s.Skipped,
		s.DuplicateClients,
		s.TotalQuoted.StringFixed(2),
		s.TotalPaid.StringFixed(2),
	)
	if s.Unparsed > 0 {
		stats += "\n" + warningStyle.Render(fmt.Sprintf("   %d money values were not numbers", s.Unparsed))
	}

	help := helpStyle.Render("Enter: Convert another file • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, statsStyle.Render(stats), help)
}
