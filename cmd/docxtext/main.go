// Command docxtext prints the plain text of cronistoria.docx, read from the
// current working directory.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/docxtext"
)

// defaultDocument is the file the program reads.
const defaultDocument = "cronistoria.docx"

var version = "dev"

// CLI is the kong command tree. Text is the default command.
type CLI struct {
	Debug   bool             `help:"Write debug logs to stderr"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Text TextCmd `cmd:"" default:"1" help:"Print the document text (default)"`
	Meta MetaCmd `cmd:"" help:"Print the document properties as YAML"`
}

// runEnv is bound into every command's Run method.
type runEnv struct {
	path   string
	stdout io.Writer
	logger *slog.Logger
}

// TextCmd prints the document text.
type TextCmd struct{}

// Run prints the text, or the rendered failure, followed by a newline.
// Extraction failures are ordinary output and do not change the exit code.
func (c *TextCmd) Run(env *runEnv) error {
	text, warnings, err := docxtext.Open(env.path).Logger(env.logger).Text()
	if err != nil {
		env.logger.Debug("extraction failed", "path", env.path, "error", err)
		text = docxtext.RenderError(err)
	}
	for _, w := range warnings {
		env.logger.Debug("extraction warning", "code", w.Code, "message", w.Message)
	}

	_, err = fmt.Fprintln(env.stdout, text)
	return err
}

// MetaCmd prints the document properties as YAML.
type MetaCmd struct{}

// Run prints the properties, or the rendered failure. Like TextCmd, an
// extraction failure still exits 0.
func (c *MetaCmd) Run(env *runEnv) error {
	meta, err := docxtext.Open(env.path).Logger(env.logger).Metadata()
	if err != nil {
		_, err = fmt.Fprintln(env.stdout, docxtext.RenderError(err))
		return err
	}

	enc := yaml.NewEncoder(env.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return enc.Close()
}

type exitPanic struct{ code int }

func main() {
	os.Exit(run(os.Args[1:], defaultDocument, os.Stdout, os.Stderr))
}

// run parses args and executes the selected command against path. It
// returns the process exit code.
func run(args []string, path string, stdout, stderr io.Writer) (code int) {
	cli := &CLI{}
	parser, err := kong.New(
		cli,
		kong.Name("docxtext"),
		kong.Description("Print the plain text of "+defaultDocument+" from the current directory."),
		kong.Vars{"version": "docxtext " + version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				code = ep.code
				return
			}
			panic(r)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "docxtext: %v\n", err)
		return 2
	}

	env := &runEnv{
		path:   path,
		stdout: stdout,
		logger: newLogger(cli.Debug, stderr),
	}
	if err := kctx.Run(env); err != nil {
		fmt.Fprintf(stderr, "docxtext: %v\n", err)
		return 1
	}
	return 0
}

// newLogger returns a debug-level text logger on w when debug is set, and a
// logger that discards everything otherwise.
func newLogger(debug bool, w io.Writer) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
