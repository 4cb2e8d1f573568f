// Package console implements the command loop driving a backend.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/google/uuid"
	"github.com/klingtnet/foldersim/backend"
	"github.com/klingtnet/foldersim/namespace"
	"go.uber.org/zap"
)

// Exporter writes a rendered tree to the file given by target and returns the file name.
type Exporter interface {
	Export(ctx context.Context, target, title string, lines iter.Seq[namespace.Line]) (string, error)
}

// Console reads commands and applies them to a backend.
type Console struct {
	id       uuid.UUID
	backend  backend.Backend
	exporter Exporter
	out      io.Writer
	logger   *zap.Logger
	prompt   string
	echo     bool
}

// Option configures a Console.
type Option func(*Console)

// WithExporter enables the export command.
func WithExporter(exporter Exporter) Option {
	return func(c *Console) { c.exporter = exporter }
}

// WithLogger sets the logger, the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// WithPrompt sets the string printed before reading a command.
func WithPrompt(prompt string) Option {
	return func(c *Console) { c.prompt = prompt }
}

// WithEcho repeats every input line after the prompt, used for non-interactive transcripts.
func WithEcho() Option {
	return func(c *Console) { c.echo = true }
}

// New returns a Console writing its output to out.
// Every console gets a random ID that is attached to its log entries.
func New(b backend.Backend, out io.Writer, opts ...Option) *Console {
	c := &Console{
		id:      uuid.New(),
		backend: b,
		out:     out,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.Stringer("session", c.id))

	return c
}

// ID identifies the console in log entries.
func (c *Console) ID() uuid.UUID {
	return c.id
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine prints the prompt and reads the next line.
func (c *Console) readLine(scanner *bufio.Scanner, prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !scanner.Scan() {
		return "", false
	}
	line := scanner.Text()
	if c.echo {
		c.printf("%s\n", line)
	}

	return line, true
}

// Run executes commands read from in until the end command or EOF.
// EOF ends the session like the end command does.
// A canceled ctx closes the backend silently and returns the context error.
// Command errors are printed and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			c.abort(err)
			return err
		}

		line, ok := c.readLine(scanner, c.prompt)
		if !ok {
			if c.prompt != "" {
				c.printf("\n")
			}
			break
		}
		cmd, err := Parse(line)
		if err != nil {
			c.fail(err)
			continue
		}
		if cmd.Op == OpNone {
			continue
		}
		if cmd.NeedsArg() {
			arg, ok := c.readLine(scanner, cmd.argPrompt()+"\n")
			if !ok {
				break
			}
			cmd.Arg = strings.TrimSpace(arg)
		}

		done, err := c.Exec(ctx, cmd)
		if err != nil {
			c.fail(err)
		}
		if done {
			return nil
		}
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("reading commands failed: %w", err)
	}

	c.logger.Debug("input exhausted, ending session")
	_, err = c.Exec(ctx, Command{Op: OpEnd})
	return err
}

func (c *Console) abort(cause error) {
	c.logger.Debug("context done, ending session", zap.Error(cause))
	if err := c.backend.Close(); err != nil {
		c.logger.Warn("closing backend failed", zap.Error(err))
	}
}

func (c *Console) fail(err error) {
	c.logger.Warn("command failed", zap.Error(err))
	c.printf("Error: %s\n", err)
}

// Exec executes a single command.
// done is true once the backend has been closed and no further command can be executed.
func (c *Console) Exec(ctx context.Context, cmd Command) (done bool, err error) {
	c.logger.Debug("executing command", zap.Stringer("op", cmd.Op), zap.String("arg", cmd.Arg))

	if cmd.NeedsArg() {
		return false, fmt.Errorf("%s: %w", cmd.Op, ErrMissingArgument)
	}

	switch cmd.Op {
	case OpNone:
		return false, nil
	case OpAddFile:
		return false, c.add(ctx, cmd.Arg, namespace.File)
	case OpAddFolder:
		return false, c.add(ctx, cmd.Arg, namespace.Folder)
	case OpNavigate:
		err = c.backend.MoveTo(ctx, cmd.Arg)
		if err != nil {
			return false, err
		}
		c.printf("In folder: %s\n", c.backend.Location())
		return false, nil
	case OpShow:
		return false, c.show()
	case OpEnd:
		err = c.backend.Close()
		if err != nil {
			return false, err
		}
		c.printf("Session ended.\n")
		return true, nil
	case OpList:
		return false, c.list(ctx)
	case OpPwd:
		c.printf("%s\n", c.backend.Location())
		return false, nil
	case OpExport:
		return false, c.export(ctx, cmd.Arg)
	case OpHelp:
		c.help()
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Op)
	}
}

func (c *Console) add(ctx context.Context, name string, kind namespace.Kind) error {
	err := c.backend.CreateChild(ctx, name, kind)
	if err != nil {
		return err
	}
	c.printf("The %s has been added to %s\n", kind, c.backend.Location())

	return nil
}

func (c *Console) lines() (iter.Seq[namespace.Line], error) {
	renderable, ok := c.backend.(backend.Renderable)
	if !ok {
		return nil, backend.ErrUnsupported
	}

	return renderable.Show()
}

func (c *Console) show() error {
	lines, err := c.lines()
	if err != nil {
		return err
	}

	c.printf("The current file-folder structure is:\n")
	for line := range lines {
		c.printf("%s\n", line)
	}

	return nil
}

func (c *Console) list(ctx context.Context) error {
	entries, err := c.backend.ListChildren(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		c.printf("(empty)\n")
		return nil
	}
	for _, entry := range entries {
		c.printf("%s: %s\n", entry.Kind.Label(), entry.Name)
	}

	return nil
}

func (c *Console) export(ctx context.Context, target string) error {
	if c.exporter == nil {
		return fmt.Errorf("export: %w", backend.ErrUnsupported)
	}
	lines, err := c.lines()
	if err != nil {
		return err
	}

	// the root line carries the tree's name
	title := ""
	for line := range lines {
		title = line.Name
		break
	}

	name, err := c.exporter.Export(ctx, target, title, lines)
	if err != nil {
		return err
	}
	c.printf("Exported the structure to %s\n", name)

	return nil
}

func (c *Console) help() {
	c.printf("Commands:\n")
	for _, info := range commands {
		usage := info.name
		if info.arg != "" {
			usage += " " + info.arg
		}
		if len(info.aliases) > 0 {
			usage += " (" + strings.Join(info.aliases, ", ") + ")"
		}
		c.printf("  %-36s %s\n", usage, info.usage)
	}
}

