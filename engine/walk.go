package engine

import (
	"context"
	"fmt"

	"github.com/reusee/bftape/program"
)

// Backend gives meaning to instructions. The interpreter executes them, the translator prints them.
type Backend interface {
	// Exec applies op. For brackets, jump reports whether control passes to just after the partner bracket.
	Exec(op program.Op) (jump bool, err error)
}

const cancelCheckInterval = 4096

// Walk feeds prog to backend from the first instruction until the instruction pointer runs off the end.
// It returns the number of instructions executed.
func Walk(ctx context.Context, prog *program.Program, backend Backend) (steps int, err error) {
	ip := 0
	for ip < prog.Len() {
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return steps, newRunError(prog, ip, err)
			}
		}
		steps++

		jump, err := backend.Exec(prog.Ops[ip])
		if err != nil {
			return steps, newRunError(prog, ip, err)
		}
		if jump {
			ip = prog.Jump(ip) + 1
		} else {
			ip++
		}
	}
	return steps, nil
}

type RunError struct {
	IP    int
	Op    program.Op
	Where string
	Err   error
}

func newRunError(prog *program.Program, ip int, err error) *RunError {
	return &RunError{
		IP:    ip,
		Op:    prog.Ops[ip],
		Where: prog.Where(ip),
		Err:   err,
	}
}

func (r *RunError) Error() string {
	return fmt.Sprintf("%s at %s: %v", r.Op, r.Where, r.Err)
}

func (r *RunError) Unwrap() error {
	return r.Err
}
