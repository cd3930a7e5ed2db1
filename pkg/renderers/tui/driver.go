package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes one text prompt. Answers are checked by the renderer,
// not the driver, so retries stay countable.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver is the terminal surface the renderer talks to. Tests swap in a
// scripted driver.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

func newSurveyDriver() (PromptDriver, error) {
	return &surveyDriver{
		out:  os.Stderr,
		opts: []survey.AskOpt{survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)},
	}, nil
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}, &answer, d.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return "", ErrAborted
	}
	return answer, err
}

// Info writes msg on its own line. Output goes to stderr so the serialised
// answer on stdout stays clean.
func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}
