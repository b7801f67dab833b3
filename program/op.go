package program

type Op byte

const (
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpInc       Op = '+'
	OpDec       Op = '-'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopOpen  Op = '['
	OpLoopClose Op = ']'
)

func IsOp(c byte) bool {
	switch Op(c) {
	case OpRight, OpLeft, OpInc, OpDec, OpOutput, OpInput, OpLoopOpen, OpLoopClose:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}
