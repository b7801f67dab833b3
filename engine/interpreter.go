package engine

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/reusee/bftape/program"
	"github.com/reusee/bftape/tape"
)

// Interpreter executes instructions against a tape.
type Interpreter struct {
	Tape *tape.Tape
	EOF  EOFPolicy
	in   io.ByteReader
	out  *bufio.Writer
}

var _ Backend = new(Interpreter)

// NewInterpreter returns an interpreter reading from in and writing to out. A nil in is empty input.
func NewInterpreter(t *tape.Tape, in io.Reader, out io.Writer, policy EOFPolicy) *Interpreter {
	var byteReader io.ByteReader
	switch in := in.(type) {
	case nil:
	case io.ByteReader:
		byteReader = in
	default:
		byteReader = bufio.NewReader(in)
	}
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{
		Tape: t,
		EOF:  policy,
		in:   byteReader,
		out:  bufio.NewWriter(out),
	}
}

func (i *Interpreter) Exec(op program.Op) (bool, error) {
	t := i.Tape
	switch op {
	case program.OpRight:
		t.Right()
	case program.OpLeft:
		t.Left()
	case program.OpInc:
		t.Inc()
	case program.OpDec:
		t.Dec()
	case program.OpOutput:
		if err := i.out.WriteByte(t.Get()); err != nil {
			return false, err
		}
	case program.OpInput:
		return false, i.read()
	case program.OpLoopOpen:
		return t.Get() == 0, nil
	case program.OpLoopClose:
		return t.Get() != 0, nil
	}
	return false, nil
}

func (i *Interpreter) read() error {
	// prompts must be visible before blocking on input
	if err := i.out.Flush(); err != nil {
		return err
	}
	if i.in == nil {
		return i.exhausted()
	}
	b, err := i.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return i.exhausted()
	} else if err != nil {
		return err
	}
	i.Tape.Set(b)
	return nil
}

func (i *Interpreter) exhausted() error {
	b, err := i.EOF.Exhausted(i.Tape.Get())
	if err != nil {
		return err
	}
	i.Tape.Set(b)
	return nil
}

func (i *Interpreter) Flush() error {
	return i.out.Flush()
}

// Interpret runs prog on a fresh tape and returns the tape in its final state, also when the run fails.
func Interpret(ctx context.Context, prog *program.Program, in io.Reader, out io.Writer, policy EOFPolicy) (*tape.Tape, error) {
	t, _, err := interpret(ctx, prog, in, out, policy)
	return t, err
}

func interpret(ctx context.Context, prog *program.Program, in io.Reader, out io.Writer, policy EOFPolicy) (*tape.Tape, int, error) {
	t := tape.New()
	interpreter := NewInterpreter(t, in, out, policy)
	steps, err := Walk(ctx, prog, interpreter)
	if flushErr := interpreter.Flush(); err == nil {
		err = flushErr
	}
	return t, steps, err
}
