package starlarks

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bftape/engine"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	While: true,
}

// Run executes a program in the Starlark dialect, with getchar and putchar bound to in and out.
func Run(ctx context.Context, name string, src string, policy engine.EOFPolicy, in io.Reader, out io.Writer) (err error) {
	var reader io.ByteReader
	switch in := in.(type) {
	case nil:
	case io.ByteReader:
		reader = in
	default:
		reader = bufio.NewReader(in)
	}
	if out == nil {
		out = io.Discard
	}
	writer := bufio.NewWriter(out)
	defer func() {
		if flushErr := writer.Flush(); err == nil {
			err = flushErr
		}
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			writer.WriteString(msg)
			writer.WriteByte('\n')
		},
	}

	predeclared := starlark.StringDict{
		"putchar": starlark.NewBuiltin("putchar", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cell int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &cell); err != nil {
				return nil, err
			}
			if err := writer.WriteByte(byte(cell)); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),

		"getchar": starlark.NewBuiltin("getchar", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cell int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &cell); err != nil {
				return nil, err
			}
			if err := writer.Flush(); err != nil {
				return nil, err
			}
			if reader != nil {
				b, err := reader.ReadByte()
				if err == nil {
					return starlark.MakeInt(int(b)), nil
				}
				if !errors.Is(err, io.EOF) {
					return nil, err
				}
			}
			b, err := policy.Exhausted(byte(cell))
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(b)), nil
		}),
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	if _, err := starlark.ExecFileOptions(fileOptions, thread, name, src, predeclared); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ctxErr, err)
		}
		return err
	}
	return nil
}
