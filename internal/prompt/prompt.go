// Package prompt asks the user for input when a value was not given on the
// command line. It sits outside project generation: the generator only ever
// receives the answers.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C).
var ErrInterrupted = errors.New("prompt interrupted")

// InputConfig configures a single-line text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the prompt implementation so callers can be tested
// without a terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyDriver struct {
	stdio terminal.Stdio
}

// NewSurveyDriver returns a Driver that renders interactive prompts on the
// given terminal streams.
func NewSurveyDriver(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Driver {
	return &surveyDriver{stdio: terminal.Stdio{In: in, Out: out, Err: errOut}}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	p := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	opts := []survey.AskOpt{survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err)}
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(strings.TrimSpace(s))
		}))
	}
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

type lineDriver struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineDriver returns a Driver that prints the message and reads one line
// from r. It is used when stdin is not a terminal.
func NewLineDriver(r io.Reader, w io.Writer) Driver {
	return &lineDriver{reader: bufio.NewReader(r), out: w}
}

func (d *lineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(d.out, "%s ", cfg.Message)

	line, err := d.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

// ProjectName asks for the name of the project to generate.
func ProjectName(ctx context.Context, d Driver) (string, error) {
	name, err := d.Input(ctx, InputConfig{
		Message: "Enter the name of your project:",
		Help:    "Used as the directory name and, capitalized, as the README title.",
		Validator: func(s string) error {
			if s == "" {
				return errors.New("project name must not be empty")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
