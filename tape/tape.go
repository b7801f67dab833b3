package tape

// Size is the number of cells on every tape.
const Size = 30000

// Tape is a circular array of byte cells with a data pointer.
type Tape struct {
	Cells   [Size]byte
	Pointer int
}

func New() *Tape {
	return new(Tape)
}

func (t *Tape) Right() {
	t.Pointer = (t.Pointer + 1) % Size
}

func (t *Tape) Left() {
	t.Pointer = (t.Pointer + Size - 1) % Size
}

func (t *Tape) Inc() {
	t.Cells[t.Pointer]++
}

func (t *Tape) Dec() {
	t.Cells[t.Pointer]--
}

func (t *Tape) Get() byte {
	return t.Cells[t.Pointer]
}

func (t *Tape) Set(b byte) {
	t.Cells[t.Pointer] = b
}
