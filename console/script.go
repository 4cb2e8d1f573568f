package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/klingtnet/foldersim/backend"
	"github.com/klingtnet/foldersim/frontmatter"
	"github.com/klingtnet/foldersim/internal/distribute"
	"github.com/klingtnet/foldersim/namespace"
	"go.uber.org/zap"
)

// ScriptOptions are read from the front-matter of a script.
type ScriptOptions struct {
	RootName   string `json:"root_name"`
	ChildOrder string `json:"child_order"`
}

// SessionOptions converts the options into options for a new session.
func (o ScriptOptions) SessionOptions() ([]namespace.Option, error) {
	order, err := namespace.ParseChildOrder(o.ChildOrder)
	if err != nil {
		return nil, err
	}

	return []namespace.Option{
		namespace.WithRootName(o.RootName),
		namespace.WithChildOrder(order),
	}, nil
}

// LoadScript splits a script into its options and its commands.
// Fields missing from the front-matter, or a missing front-matter, keep the values of defaults.
func LoadScript(data []byte, defaults ScriptOptions) (ScriptOptions, []byte, error) {
	opts := defaults
	body, err := frontmatter.Decode(data, &opts)
	if errors.Is(err, frontmatter.ErrNoFrontMatter) {
		return defaults, data, nil
	}
	if err != nil {
		return defaults, nil, err
	}

	return opts, body, nil
}

// Script is a named list of commands.
type Script struct {
	Name string
	Data []byte
}

// Transcript is the output of a replayed script.
type Transcript struct {
	Name   string
	Output string
	// Err is set if the script could not be replayed at all.
	Err error
}

// Replayer replays scripts, each in a session of its own.
type Replayer struct {
	defaults    ScriptOptions
	consoleOpts []Option
	logger      *zap.Logger
	concurrency int
}

// NewReplayer returns a Replayer running up to concurrency scripts at once.
// consoleOpts are applied to the console of every script.
func NewReplayer(defaults ScriptOptions, concurrency int, logger *zap.Logger, consoleOpts ...Option) *Replayer {
	return &Replayer{
		defaults:    defaults,
		consoleOpts: consoleOpts,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Replay runs all scripts and returns their transcripts in the order of scripts.
// A broken script is reported in its transcript and does not stop the others.
func (r *Replayer) Replay(ctx context.Context, scripts []Script) ([]Transcript, error) {
	transcripts := make([]Transcript, len(scripts))
	err := distribute.Each(ctx, len(scripts), func(ctx context.Context, idx int) error {
		script := scripts[idx]
		output, err := r.replay(ctx, script)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if err != nil {
			r.logger.Warn("replaying script failed", zap.String("script", script.Name), zap.Error(err))
		}
		transcripts[idx] = Transcript{Name: script.Name, Output: output, Err: err}

		return nil
	}, r.concurrency)
	if err != nil {
		return nil, err
	}

	return transcripts, nil
}

func (r *Replayer) replay(ctx context.Context, script Script) (string, error) {
	scriptOpts, body, err := LoadScript(script.Data, r.defaults)
	if err != nil {
		return "", fmt.Errorf("loading script %q failed: %w", script.Name, err)
	}
	sessionOpts, err := scriptOpts.SessionOptions()
	if err != nil {
		return "", fmt.Errorf("script %q: %w", script.Name, err)
	}
	session, err := namespace.NewSession(sessionOpts...)
	if err != nil {
		return "", fmt.Errorf("script %q: %w", script.Name, err)
	}

	out := bytes.NewBuffer(nil)
	opts := append([]Option{WithLogger(r.logger.With(zap.String("script", script.Name)))}, r.consoleOpts...)
	err = New(backend.NewMemory(session), out, opts...).Run(ctx, bytes.NewReader(body))

	return out.String(), err
}
