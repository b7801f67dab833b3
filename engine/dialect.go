package engine

import (
	"fmt"
	"strings"

	"github.com/reusee/bftape/program"
	"github.com/reusee/bftape/tape"
)

type Target string

const (
	TargetC        Target = "c"
	TargetGo       Target = "go"
	TargetStarlark Target = "starlark"
)

var Targets = []Target{TargetC, TargetGo, TargetStarlark}

func ParseTarget(str string) (Target, error) {
	for _, target := range Targets {
		if string(target) == str {
			return target, nil
		}
	}
	return "", fmt.Errorf("unknown target: %q", str)
}

// Dialect describes how a target language spells each instruction.
type Dialect struct {
	Indent string
	// Prelude opens the program and the scope at depth 1.
	Prelude  func(policy EOFPolicy) string
	Epilogue string
	Lines    map[program.Op]string
	LoopOpen string
	// LoopBody, if not empty, is emitted as the first line of every loop body.
	LoopBody string
	// LoopClose, if not empty, is emitted after every loop body at the loop's depth.
	LoopClose string
}

func (t Target) Dialect() (*Dialect, error) {
	switch t {
	case TargetC:
		return cDialect, nil
	case TargetGo:
		return goDialect, nil
	case TargetStarlark:
		return starlarkDialect, nil
	}
	return nil, fmt.Errorf("unknown target: %q", string(t))
}

var cDialect = &Dialect{
	Indent: "\t",
	Prelude: func(policy EOFPolicy) string {
		var b strings.Builder
		fmt.Fprintf(&b, `#include <stdio.h>
#include <stdlib.h>

#define TAPE_SIZE %d

static unsigned char tape[TAPE_SIZE];
static unsigned int p;

static void read_cell(void) {
	int c;

	fflush(stdout);
	c = getchar();
`, tape.Size)
		switch policy {
		case EOFZero:
			b.WriteString("\ttape[p] = c == EOF ? 0 : (unsigned char)c;\n")
		case EOFMax:
			b.WriteString("\ttape[p] = c == EOF ? 255 : (unsigned char)c;\n")
		case EOFKeep:
			b.WriteString("\tif (c != EOF) {\n\t\ttape[p] = (unsigned char)c;\n\t}\n")
		default:
			b.WriteString("\tif (c == EOF) {\n\t\tfputs(\"input exhausted\\n\", stderr);\n\t\texit(1);\n\t}\n\ttape[p] = (unsigned char)c;\n")
		}
		b.WriteString("}\n\nint main(void) {\n")
		return b.String()
	},
	Epilogue: "\treturn 0;\n}\n",
	Lines: map[program.Op]string{
		program.OpRight:  "p = (p + 1) % TAPE_SIZE;",
		program.OpLeft:   "p = (p + TAPE_SIZE - 1) % TAPE_SIZE;",
		program.OpInc:    "++tape[p];",
		program.OpDec:    "--tape[p];",
		program.OpOutput: "putchar(tape[p]);",
		program.OpInput:  "read_cell();",
	},
	LoopOpen:  "while (tape[p]) {",
	LoopClose: "}",
}

var goDialect = &Dialect{
	Indent: "\t",
	Prelude: func(policy EOFPolicy) string {
		var b strings.Builder
		fmt.Fprintf(&b, `package main

import (
	"bufio"
	"os"
)

const tapeSize = %d

var (
	tape [tapeSize]byte
	p    int
	in   = bufio.NewReader(os.Stdin)
	out  = bufio.NewWriter(os.Stdout)
)

func readCell() {
	out.Flush()
	c, err := in.ReadByte()
`, tape.Size)
		switch policy {
		case EOFZero:
			b.WriteString("\tif err != nil {\n\t\tc = 0\n\t}\n")
		case EOFMax:
			b.WriteString("\tif err != nil {\n\t\tc = 255\n\t}\n")
		case EOFKeep:
			b.WriteString("\tif err != nil {\n\t\treturn\n\t}\n")
		default:
			b.WriteString("\tif err != nil {\n\t\tos.Stderr.WriteString(\"input exhausted\\n\")\n\t\tos.Exit(1)\n\t}\n")
		}
		b.WriteString("\ttape[p] = c\n}\n\nfunc main() {\n\tdefer out.Flush()\n")
		return b.String()
	},
	Epilogue: "}\n",
	Lines: map[program.Op]string{
		program.OpRight:  "p = (p + 1) % tapeSize",
		program.OpLeft:   "p = (p + tapeSize - 1) % tapeSize",
		program.OpInc:    "tape[p]++",
		program.OpDec:    "tape[p]--",
		program.OpOutput: "out.WriteByte(tape[p])",
		program.OpInput:  "readCell()",
	},
	LoopOpen:  "for tape[p] != 0 {",
	LoopClose: "}",
}

// getchar and putchar are provided by the host, see package starlarks.
var starlarkDialect = &Dialect{
	Indent: "    ",
	Prelude: func(EOFPolicy) string {
		return fmt.Sprintf("def main():\n    tape = [0] * %d\n    p = 0\n", tape.Size)
	},
	Epilogue: "\nmain()\n",
	Lines: map[program.Op]string{
		program.OpRight:  fmt.Sprintf("p = (p + 1) %% %d", tape.Size),
		program.OpLeft:   fmt.Sprintf("p = (p + %d) %% %d", tape.Size-1, tape.Size),
		program.OpInc:    "tape[p] = (tape[p] + 1) % 256",
		program.OpDec:    "tape[p] = (tape[p] + 255) % 256",
		program.OpOutput: "putchar(tape[p])",
		program.OpInput:  "tape[p] = getchar(tape[p])",
	},
	LoopOpen: "while tape[p] != 0:",
	LoopBody: "pass",
}
