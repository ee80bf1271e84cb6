package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/dsec/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type importFinishedMsg struct {
	report application.ImportReport
	err    error
}

// importProgress shows which bundle is being imported and, once the import
// returns, a one-line tally of what happened to each app.
type importProgress struct {
	spinner  spinner.Model
	source   string
	apps     int
	run      func(context.Context) (application.ImportReport, error)
	ctx      context.Context
	report   application.ImportReport
	err      error
	finished bool
}

var (
	importTallyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	importFailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newImportProgress(ctx context.Context, source string, apps int, run func(context.Context) (application.ImportReport, error)) importProgress {
	return importProgress{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		source: source,
		apps:   apps,
		run:    run,
		ctx:    ctx,
	}
}

func (m importProgress) Init() tea.Cmd {
	importCmd := func() tea.Msg {
		report, err := m.run(m.ctx)
		return importFinishedMsg{report: report, err: err}
	}

	return tea.Batch(m.spinner.Tick, importCmd)
}

func (m importProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importFinishedMsg:
		m.finished = true
		m.report = msg.report
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m importProgress) View() string {
	if !m.finished {
		return fmt.Sprintf("%s importing %d app(s) from %s", m.spinner.View(), m.apps, m.source)
	}
	if m.err != nil {
		return importFailStyle.Render(fmt.Sprintf("import from %s stopped after %d secret(s)", m.source, m.report.SecretsWritten)) + "\n"
	}

	return importTallyStyle.Render(fmt.Sprintf("%d created, %d updated, %d skipped",
		len(m.report.Created), len(m.report.Updated), len(m.report.Skipped))) + "\n"
}

// trackImport runs run behind the progress view on output and returns its
// report.
func trackImport(ctx context.Context, output io.Writer, source string, apps int, run func(context.Context) (application.ImportReport, error)) (application.ImportReport, error) {
	p := tea.NewProgram(
		newImportProgress(ctx, source, apps, run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return application.ImportReport{}, fmt.Errorf("import progress: %w", err)
	}

	progress, ok := final.(importProgress)
	if !ok {
		return application.ImportReport{}, fmt.Errorf("unexpected import progress model %T", final)
	}

	return progress.report, progress.err
}
