package program

import (
	"errors"
	"fmt"
)

var ErrUnbalanced = errors.New("unbalanced loop construct")

// Pos is a 1-based line and column in source text.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Program struct {
	Ops       []Op
	jumps     []int
	positions []Pos
}

// Compile validates bracket balance and precomputes the partner of every bracket.
func Compile(ops []Op) (*Program, error) {
	return compile(ops, nil)
}

// Parse tokenizes src and compiles the result, recording where each instruction came from.
func Parse(src string) (*Program, error) {
	ops := make([]Op, 0, len(src))
	positions := make([]Pos, 0, len(src))
	line, column := 1, 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		column++
		if c == '\n' {
			line++
			column = 0
			continue
		}
		if IsOp(c) {
			ops = append(ops, Op(c))
			positions = append(positions, Pos{
				Line:   line,
				Column: column,
			})
		}
	}
	return compile(ops, positions)
}

func compile(ops []Op, positions []Pos) (*Program, error) {
	prog := &Program{
		Ops:       ops,
		jumps:     make([]int, len(ops)),
		positions: positions,
	}
	var stack []int
	for ip, op := range ops {
		switch op {
		case OpLoopOpen:
			stack = append(stack, ip)
		case OpLoopClose:
			if len(stack) == 0 {
				return nil, prog.unbalanced(ip)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			prog.jumps[open] = ip
			prog.jumps[ip] = open
		default:
			prog.jumps[ip] = -1
		}
	}
	if len(stack) > 0 {
		// innermost unmatched opening bracket
		return nil, prog.unbalanced(stack[len(stack)-1])
	}
	return prog, nil
}

func (p *Program) unbalanced(ip int) error {
	return fmt.Errorf("%w: unmatched %s at %s", ErrUnbalanced, p.Ops[ip], p.Where(ip))
}

func (p *Program) Len() int {
	return len(p.Ops)
}

// Jump returns the index of the bracket matching the one at ip, or -1 if ip is not a bracket.
func (p *Program) Jump(ip int) int {
	return p.jumps[ip]
}

// Pos reports the source position of the instruction at ip, if known.
func (p *Program) Pos(ip int) (Pos, bool) {
	if ip < 0 || ip >= len(p.positions) {
		return Pos{}, false
	}
	return p.positions[ip], true
}

// Where describes the location of ip for error messages.
func (p *Program) Where(ip int) string {
	if pos, ok := p.Pos(ip); ok {
		return pos.String()
	}
	return fmt.Sprintf("instruction %d", ip)
}

func (p *Program) String() string {
	buf := make([]byte, len(p.Ops))
	for i, op := range p.Ops {
		buf[i] = byte(op)
	}
	return string(buf)
}
