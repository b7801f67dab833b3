package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/bftape/program"
)

// Translator appends the dialect's spelling of each instruction to a buffer.
// Loop bodies are visited once, so Exec never requests a jump.
type Translator struct {
	dialect *Dialect
	buf     strings.Builder
	depth   int
}

var _ Backend = new(Translator)

func NewTranslator(dialect *Dialect, policy EOFPolicy) *Translator {
	t := &Translator{
		dialect: dialect,
		depth:   1,
	}
	t.buf.WriteString(dialect.Prelude(policy))
	return t
}

func (t *Translator) line(str string) {
	for range t.depth {
		t.buf.WriteString(t.dialect.Indent)
	}
	t.buf.WriteString(str)
	t.buf.WriteByte('\n')
}

func (t *Translator) Exec(op program.Op) (bool, error) {
	switch op {
	case program.OpLoopOpen:
		t.line(t.dialect.LoopOpen)
		t.depth++
		if t.dialect.LoopBody != "" {
			t.line(t.dialect.LoopBody)
		}
	case program.OpLoopClose:
		if t.depth <= 1 {
			return false, fmt.Errorf("%w: unmatched %s", program.ErrUnbalanced, op)
		}
		t.depth--
		if t.dialect.LoopClose != "" {
			t.line(t.dialect.LoopClose)
		}
	default:
		str, ok := t.dialect.Lines[op]
		if !ok {
			return false, fmt.Errorf("unknown instruction: %q", byte(op))
		}
		t.line(str)
	}
	return false, nil
}

// Finish closes the program and returns its text.
func (t *Translator) Finish() (string, error) {
	if t.depth != 1 {
		return "", fmt.Errorf("%w: %d loops left open", program.ErrUnbalanced, t.depth-1)
	}
	t.buf.WriteString(t.dialect.Epilogue)
	return t.buf.String(), nil
}

// Translate renders prog in the language of target. The result depends only on the arguments.
func Translate(prog *program.Program, target Target, policy EOFPolicy) (string, error) {
	dialect, err := target.Dialect()
	if err != nil {
		return "", err
	}
	translator := NewTranslator(dialect, policy)
	if _, err := Walk(context.Background(), prog, translator); err != nil {
		return "", err
	}
	return translator.Finish()
}
