package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-cipher-drop/internal/adapter"
	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/tui"
	"github.com/MKhiriev/go-cipher-drop/models"
	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

type App struct {
	adapter adapter.CipherAdapter
	form    Form
	opts    config.ClientOptions

	stdin           io.Reader
	stdout          io.Writer
	stderr          io.Writer
	stdinIsTerminal bool
	styled          bool

	readPassword    func(prompt string) (string, error)
	copyToClipboard func(text string) error

	logger *logger.Logger
}

func NewApp(cipherAdapter adapter.CipherAdapter, form Form, opts config.ClientOptions, logger *logger.Logger) *App {
	return &App{
		adapter: cipherAdapter,
		form:    form,
		opts:    opts,

		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		stdinIsTerminal: term.IsTerminal(int(os.Stdin.Fd())),
		styled:          term.IsTerminal(int(os.Stdout.Fd())),

		readPassword:    promptPassword,
		copyToClipboard: clipboard.WriteAll,

		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	req, err := a.resolve(ctx)
	if err != nil {
		return err
	}

	var result string
	switch req.Operation {
	case models.OperationEncrypt:
		result, err = a.adapter.Encrypt(ctx, req.Text, req.Password)
	case models.OperationDecrypt:
		result, err = a.adapter.Decrypt(ctx, req.Text, req.Password)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", req.Operation, err)
	}

	a.print(result)

	if a.opts.CopyToClipboard {
		if err = a.copyToClipboard(result); err != nil {
			a.logger.Warn().Err(err).Msg("could not copy the result to the clipboard")
		} else {
			fmt.Fprintln(a.stderr, "copied to clipboard")
		}
	}

	return nil
}

// resolve fills the request from, in order: positional arguments, stdin,
// the configured password, the form or the password prompt.
func (a *App) resolve(ctx context.Context) (tui.Request, error) {
	var req tui.Request

	args := a.opts.Args
	if len(args) > 0 {
		op, err := models.ParseOperation(args[0])
		if err != nil {
			return req, err
		}
		req.Operation = op
		req.Text = strings.Join(args[1:], " ")
	}
	req.Password = a.opts.Password

	if a.opts.Interactive {
		return a.form.Form(ctx, req)
	}

	if req.Operation == "" {
		return req, ErrMissingOperation
	}
	if req.Text == "" && !a.stdinIsTerminal {
		text, err := readText(a.stdin)
		if err != nil {
			return req, err
		}
		req.Text = text
	}
	if req.Text == "" {
		return req, ErrMissingText
	}

	if req.Password == "" {
		password, err := a.readPassword("Password: ")
		if err != nil {
			return req, err
		}
		req.Password = password
	}

	return req, nil
}

func (a *App) print(result string) {
	if a.styled && !strings.Contains(result, "\n") {
		result = tui.StyleResult(result)
	}
	fmt.Fprintln(a.stdout, result)
}

// readText reads all of r and drops one trailing line break.
func readText(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoPassword
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(password), nil
}
