package tape

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is the observable state of a tape. Zero cells are omitted.
type Snapshot struct {
	Pointer int          `yaml:"pointer"`
	Cells   map[int]byte `yaml:"cells,omitempty"`
}

func (t *Tape) Snapshot() Snapshot {
	s := Snapshot{
		Pointer: t.Pointer,
	}
	for i, c := range t.Cells {
		if c == 0 {
			continue
		}
		if s.Cells == nil {
			s.Cells = make(map[int]byte)
		}
		s.Cells[i] = c
	}
	return s
}

func (s Snapshot) Tape() (*Tape, error) {
	if s.Pointer < 0 || s.Pointer >= Size {
		return nil, fmt.Errorf("pointer out of range: %d", s.Pointer)
	}
	t := New()
	t.Pointer = s.Pointer
	for i, c := range s.Cells {
		if i < 0 || i >= Size {
			return nil, fmt.Errorf("cell out of range: %d", i)
		}
		t.Cells[i] = c
	}
	return t, nil
}

func (t *Tape) WriteSnapshot(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}

func ReadSnapshot(r io.Reader) (*Tape, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return s.Tape()
}
