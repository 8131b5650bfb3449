package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
)

type waitDoneMsg struct{}

// waitModel shows a spinner until the work command reports back.
type waitModel struct {
	spinner spinner.Model
	message string
	work    tea.Cmd
	done    bool
	aborted bool
}

func newWaitModel(message string, work tea.Cmd) waitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StylePurple
	return waitModel{spinner: s, message: message, work: work}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.aborted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m waitModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return "  " + m.spinner.View() + " " + formatter.Dim(m.message) + "\n"
}

// waitFor runs fn. In interactive mode a spinner is drawn on out while it
// runs, and Ctrl+C cancels the context passed to fn.
func waitFor[T any](ctx context.Context, interactive bool, in io.Reader, out io.Writer, message string, fn func(context.Context) (T, error)) (T, error) {
	if !interactive {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		result T
		err    error
	)
	work := func() tea.Msg {
		result, err = fn(ctx)
		return waitDoneMsg{}
	}

	p := tea.NewProgram(newWaitModel(message, work),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, runErr := p.Run()
	if m, ok := final.(waitModel); !ok || !m.done {
		var zero T
		if runErr != nil {
			return zero, runErr
		}
		return zero, context.Canceled
	}
	return result, err
}
