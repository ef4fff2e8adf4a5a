package tui

import (
	"strings"

	"github.com/MKhiriev/go-cipher-drop/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldOperation field = iota
	fieldText
	fieldPassword
)

const inputWidth = 48

type formModel struct {
	op      models.Operation
	opFixed bool

	text     textinput.Model
	password textinput.Model
	focus    field

	errMsg string
	done   bool
	quit   bool
}

func newFormModel(req Request) formModel {
	text := textinput.New()
	text.Width = inputWidth
	text.SetValue(req.Text)

	password := textinput.New()
	password.Width = inputWidth
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.SetValue(req.Password)

	m := formModel{
		op:       req.Operation,
		opFixed:  req.Operation != "",
		text:     text,
		password: password,
	}
	if m.op == "" {
		m.op = models.OperationEncrypt
	}

	switch {
	case !m.opFixed:
		m.setFocus(fieldOperation)
	case req.Text != "":
		m.setFocus(fieldPassword)
	default:
		m.setFocus(fieldText)
	}

	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.next):
			m.setFocus(m.step(1))
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.setFocus(m.step(-1))
			return m, nil
		case m.focus == fieldOperation && key.Matches(keyMsg, keys.toggle):
			m.op = m.op.Other()
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldText:
		m.text, cmd = m.text.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit advances to the next field, or finishes the form when the password
// field is focused and both values are present.
func (m formModel) submit() (tea.Model, tea.Cmd) {
	if m.focus != fieldPassword {
		m.setFocus(m.step(1))
		return m, nil
	}

	switch {
	case m.text.Value() == "":
		m.errMsg = m.textLabel() + " is required"
		m.setFocus(fieldText)
		return m, nil
	case m.password.Value() == "":
		m.errMsg = "password is required"
		return m, nil
	}

	m.errMsg = ""
	m.done = true
	return m, tea.Quit
}

func (m formModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cipher drop"))
	b.WriteString("\n\n")

	if !m.opFixed {
		b.WriteString(m.row(fieldOperation, "Operation", m.opSwitch()))
	} else {
		b.WriteString(labelStyle.Render("Operation") + string(m.op) + "\n")
	}
	b.WriteString(m.row(fieldText, m.textLabel(), m.text.View()))
	b.WriteString(m.row(fieldPassword, "Password", m.password.View()))

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "tab: next field │ enter: submit │ esc: quit"
	if !m.opFixed {
		help = "←/→: operation │ " + help
	}
	b.WriteString(helpStyle.Render(help))

	return appStyle.Render(b.String())
}

// request returns the values collected so far.
func (m formModel) request() Request {
	return Request{
		Operation: m.op,
		Text:      m.text.Value(),
		Password:  m.password.Value(),
	}
}

func (m formModel) row(f field, label, value string) string {
	prefix := "  "
	if m.focus == f {
		prefix = focusedStyle.Render("› ")
		label = focusedStyle.Render(labelStyle.Render(label))
	} else {
		label = labelStyle.Render(label)
	}
	return prefix + label + value + "\n"
}

func (m formModel) opSwitch() string {
	render := func(op models.Operation) string {
		if op == m.op {
			return selectedStyle.Render(string(op))
		}
		return string(op)
	}
	return render(models.OperationEncrypt) + " / " + render(models.OperationDecrypt)
}

func (m formModel) textLabel() string {
	if m.op == models.OperationDecrypt {
		return "Token"
	}
	return "Text"
}

func (m formModel) step(delta int) field {
	first := fieldOperation
	if m.opFixed {
		first = fieldText
	}
	n := int(fieldPassword-first) + 1

	next := (int(m.focus-first) + delta + n) % n
	return first + field(next)
}

func (m *formModel) setFocus(f field) {
	m.focus = f
	m.text.Blur()
	m.password.Blur()

	switch f {
	case fieldText:
		m.text.Focus()
	case fieldPassword:
		m.password.Focus()
	}
}
