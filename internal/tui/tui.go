package tui

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/go-cipher-drop/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the form")

// Request is what the form collects. Empty fields are asked for; a set
// Operation is shown but cannot be changed.
type Request struct {
	Operation models.Operation
	Text      string
	Password  string
}

type TUI struct {
	options []tea.ProgramOption
}

// New returns a TUI drawing to stderr. Extra options are applied after the
// defaults, so tests can swap input and output.
func New(options ...tea.ProgramOption) *TUI {
	return &TUI{options: options}
}

// Form runs the form until the user submits or quits. It returns
// [ErrUserQuit] on esc or ctrl+c.
func (t *TUI) Form(ctx context.Context, req Request) (Request, error) {
	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}, t.options...)

	finalModel, err := tea.NewProgram(newFormModel(req), options...).Run()
	if err != nil {
		return Request{}, err
	}

	result, ok := finalModel.(formModel)
	if !ok {
		return Request{}, tea.ErrProgramKilled
	}
	if result.quit || !result.done {
		return Request{}, ErrUserQuit
	}

	return result.request(), nil
}
