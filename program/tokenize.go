package program

// Tokenize keeps the instruction symbols of src in order and drops everything else.
func Tokenize(src string) []Op {
	ops := make([]Op, 0, len(src))
	for i := 0; i < len(src); i++ {
		if IsOp(src[i]) {
			ops = append(ops, Op(src[i]))
		}
	}
	return ops
}
