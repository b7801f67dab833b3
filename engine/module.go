package engine

import (
	"context"
	"io"
	"time"

	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/program"
	"github.com/reusee/bftape/tape"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// InterpretFunc is Interpret bound to the configured EOF policy.
type InterpretFunc func(ctx context.Context, prog *program.Program, in io.Reader, out io.Writer) (*tape.Tape, error)

func (Module) InterpretFunc(
	logger logs.Logger,
	policy EOFPolicy,
) InterpretFunc {
	return func(ctx context.Context, prog *program.Program, in io.Reader, out io.Writer) (*tape.Tape, error) {
		start := time.Now()
		t, steps, err := interpret(ctx, prog, in, out, policy)
		logger.DebugContext(ctx, "interpret",
			"instructions", prog.Len(),
			"steps", steps,
			"pointer", t.Pointer,
			"eof", policy,
			"duration", time.Since(start),
		)
		return t, err
	}
}

// TranslateFunc is Translate bound to the configured target and EOF policy.
type TranslateFunc func(prog *program.Program) (string, error)

func (Module) TranslateFunc(
	logger logs.Logger,
	target Target,
	policy EOFPolicy,
) TranslateFunc {
	return func(prog *program.Program) (string, error) {
		text, err := Translate(prog, target, policy)
		if err != nil {
			return "", err
		}
		logger.Debug("translate",
			"target", target,
			"instructions", prog.Len(),
			"bytes", len(text),
		)
		return text, nil
	}
}
