package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-formgen-bic/components/bic"
	"github.com/goliatone/go-formgen-bic/pkg/render"
	"github.com/goliatone/go-formgen-bic/pkg/renderers/tui"
	"github.com/goliatone/go-formgen-bic/pkg/swiftbic"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(in io.Reader, out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bic-cli",
		Usage:     "Validate, render and serve bank identifier code fields",
		Version:   Version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML field config"},
			&cli.StringFlag{Name: "openapi", Usage: "OpenAPI document to read the field schema from"},
			&cli.StringFlag{Name: "schema", Usage: "Component schema holding the BIC property (with --openapi)"},
			&cli.StringFlag{Name: "property", Value: bic.DefaultName, Usage: "BIC property name (with --openapi)"},
			&cli.StringFlag{Name: "locale", Aliases: []string{"l"}, Usage: "Locale for labels and messages"},
		},
		Commands: []*cli.Command{
			validateCmd(),
			renderCmd(),
			promptCmd(),
			serveCmd(),
		},
	}
	// Exit codes are handled in main so tests get the error back.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// fieldOptions collects options from --config, --openapi and --locale, in
// that order.
func fieldOptions(c *cli.Context) ([]bic.OptionFn, error) {
	var fns []bic.OptionFn
	if path := c.String("config"); path != "" {
		cfg, err := bic.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		fns = append(fns, cfg.Options()...)
	}
	if doc := c.String("openapi"); doc != "" {
		if c.String("schema") == "" {
			return nil, errors.New("--schema is required with --openapi")
		}
		schemaFns, err := bic.LoadSchemaOptions(c.Context, doc, c.String("schema"), c.String("property"))
		if err != nil {
			return nil, err
		}
		fns = append(fns, schemaFns...)
	}
	if locale := c.String("locale"); locale != "" {
		fns = append(fns, bic.WithLocale(locale))
	}
	return fns, nil
}

func newComponent(c *cli.Context) (*bic.Component, error) {
	fns, err := fieldOptions(c)
	if err != nil {
		return nil, err
	}
	return bic.New(fns...), nil
}

type validateResult struct {
	Input       string `json:"input"`
	Value       string `json:"value"`
	Valid       bool   `json:"valid"`
	Message     string `json:"message,omitempty"`
	Institution string `json:"institution,omitempty"`
	Country     string `json:"country,omitempty"`
	Location    string `json:"location,omitempty"`
	Branch      string `json:"branch,omitempty"`
}

// validateCmd creates the validate command.
func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate codes given as arguments or one per line on stdin",
		ArgsUsage: "[code...]",
		Action: func(c *cli.Context) error {
			component, err := newComponent(c)
			if err != nil {
				return outputError(err)
			}

			codes := c.Args().Slice()
			if len(codes) == 0 {
				if c.App.Reader == os.Stdin && !stdinHasData() {
					return cli.Exit("validate: no codes given", 2)
				}
				codes, err = readLines(c.App.Reader)
				if err != nil {
					return outputError(err)
				}
			}

			results := make([]validateResult, 0, len(codes))
			invalid := 0
			for _, code := range codes {
				field := component.NewField()
				field.Normalize(code)
				outcome := field.Validate()
				value, _ := field.Value()

				result := validateResult{
					Input:   code,
					Value:   value,
					Valid:   outcome.Valid(),
					Message: outcome.Message(),
				}
				if !outcome.Valid() {
					invalid++
				} else if parsed, err := swiftbic.Parse(value); err == nil {
					result.Institution = parsed.Institution
					result.Country = parsed.Country
					result.Location = parsed.Location
					result.Branch = parsed.Branch
				}
				results = append(results, result)
			}

			if err := outputJSON(c.App.Writer, results); err != nil {
				return outputError(err)
			}
			if invalid > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// renderCmd creates the render command.
func renderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Print the field markup, optionally for a submitted value",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Field name"},
			&cli.StringFlag{Name: "value", Usage: "Submitted value; the field is validated when set"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Field label"},
		},
		Action: func(c *cli.Context) error {
			component, err := newComponent(c)
			if err != nil {
				return outputError(err)
			}

			var fns []bic.OptionFn
			if name := c.String("name"); name != "" {
				fns = append(fns, bic.WithName(name))
			}
			if title := c.String("title"); title != "" {
				fns = append(fns, bic.WithTitle(title))
			}
			field := component.NewField(fns...)
			if c.IsSet("value") {
				field.Normalize(c.String("value"))
				field.Validate()
			}

			opts := field.Options()
			renderer, err := bic.NewRenderer(opts.Translator)
			if err != nil {
				return outputError(err)
			}
			markup, err := field.Render(renderer, render.RenderOptions{Locale: opts.Locale})
			if err != nil {
				return outputError(err)
			}
			_, err = fmt.Fprintln(c.App.Writer, markup)
			return err
		},
	}
}

// promptCmd creates the prompt command.
func promptCmd() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Ask for a code interactively until it validates",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(tui.OutputFormatJSON), Usage: "Output format: json|form|pretty"},
			&cli.IntFlag{Name: "attempts", Usage: "Give up after this many invalid answers (0 keeps asking)"},
		},
		Action: func(c *cli.Context) error {
			component, err := newComponent(c)
			if err != nil {
				return outputError(err)
			}
			r, err := tui.New(
				tui.WithOutputFormat(tui.OutputFormat(c.String("format"))),
				tui.WithMaxAttempts(c.Int("attempts")),
			)
			if err != nil {
				return outputError(err)
			}

			out, err := r.Render(c.Context, component.NewField(), render.RenderOptions{})
			if errors.Is(err, tui.ErrAborted) {
				return cli.Exit("aborted", 130)
			}
			if err != nil {
				return outputError(err)
			}
			_, err = fmt.Fprintln(c.App.Writer, string(out))
			return err
		},
	}
}

// outputJSON writes JSON output.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
