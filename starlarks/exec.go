package starlarks

import (
	"context"
	"io"
	"time"

	"github.com/reusee/bftape/engine"
	"github.com/reusee/bftape/logs"
)

type Exec func(ctx context.Context, name string, src string, in io.Reader, out io.Writer) error

func (Module) Exec(
	policy engine.EOFPolicy,
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, name string, src string, in io.Reader, out io.Writer) error {
		start := time.Now()
		err := Run(ctx, name, src, policy, in, out)
		logger.DebugContext(ctx, "starlark exec",
			"name", name,
			"bytes", len(src),
			"duration", time.Since(start),
			"error", err,
		)
		return err
	}
}
