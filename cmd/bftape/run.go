package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/engine"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/program"
	"github.com/reusee/bftape/sources"
	"github.com/reusee/bftape/starlarks"
	"github.com/reusee/bftape/tape"
)

type Options struct {
	Location    string
	Gen         bool
	ViaStarlark bool
	DumpPath    string
}

var ErrDumpConflict = errors.New("-dump only applies to direct interpretation, not -gen or -via-starlark")

type Run func(ctx context.Context, options Options, stdin io.Reader, stdout io.Writer) error

func (Module) Run(
	loader configs.Loader,
	load sources.Load,
	interpret engine.InterpretFunc,
	translate engine.TranslateFunc,
	exec starlarks.Exec,
	policy engine.EOFPolicy,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, options Options, stdin io.Reader, stdout io.Writer) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if options.DumpPath != "" && (options.Gen || options.ViaStarlark) {
			return ErrDumpConflict
		}
		if err := loader.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		text, err := load(ctx, options.Location)
		if err != nil {
			return err
		}
		prog, err := program.Parse(text)
		if err != nil {
			return fmt.Errorf("%s: %w", options.Location, err)
		}

		switch {

		case options.Gen:
			text, err := translate(prog)
			if err != nil {
				return err
			}
			_, err = io.WriteString(stdout, text)
			return err

		case options.ViaStarlark:
			src, err := engine.Translate(prog, engine.TargetStarlark, policy)
			if err != nil {
				return err
			}
			return exec(ctx, options.Location, src, stdin, stdout)

		}

		t, err := interpret(ctx, prog, stdin, stdout)
		if options.DumpPath != "" {
			if dumpErr := dump(t, options.DumpPath); dumpErr != nil {
				logger.ErrorContext(ctx, "dump tape", "path", options.DumpPath, "error", dumpErr)
				if err == nil {
					err = dumpErr
				}
			}
		}
		return err
	}
}

func dump(t *tape.Tape, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteSnapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
