package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/engine"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/bftape/program"
	"github.com/reusee/bftape/sources"
	"github.com/reusee/bftape/tape"
	"github.com/reusee/dscope"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func testRun(t *testing.T, configSrc string, fn func(run Run, dir string)) {
	dir := t.TempDir()
	var paths []string
	if configSrc != "" {
		path := filepath.Join(dir, "bftape.cue")
		if err := os.WriteFile(path, []byte(configSrc), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, "")
		},
	).Call(func(
		run Run,
	) {
		fn(run, dir)
	})
}

func writeSource(t *testing.T, dir string, src string) string {
	path := filepath.Join(dir, "prog.bf")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInterpret(t *testing.T) {
	testRun(t, "", func(run Run, dir string) {
		path := writeSource(t, dir, "print the greeting\n"+helloWorld)
		out := new(bytes.Buffer)
		if err := run(context.Background(), Options{
			Location: path,
		}, nil, out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "Hello World!\n" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestGen(t *testing.T) {
	testRun(t, `target: "starlark"`, func(run Run, dir string) {
		path := writeSource(t, dir, "+[>+]")
		out := new(bytes.Buffer)
		if err := run(context.Background(), Options{
			Location: path,
			Gen:      true,
		}, nil, out); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), "def main():\n") {
			t.Fatalf("got %s", out.String())
		}
	})
}

func TestViaStarlark(t *testing.T) {
	testRun(t, `eof: "zero"`, func(run Run, dir string) {
		path := writeSource(t, dir, ",[.,]")
		out := new(bytes.Buffer)
		if err := run(context.Background(), Options{
			Location:    path,
			ViaStarlark: true,
		}, strings.NewReader("echo"), out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "echo" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestDump(t *testing.T) {
	testRun(t, "", func(run Run, dir string) {
		path := writeSource(t, dir, "++>+++++[-<+>]")
		dumpPath := filepath.Join(dir, "tape.yaml")
		if err := run(context.Background(), Options{
			Location: path,
			DumpPath: dumpPath,
		}, nil, nil); err != nil {
			t.Fatal(err)
		}
		f, err := os.Open(dumpPath)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		tp, err := tape.ReadSnapshot(f)
		if err != nil {
			t.Fatal(err)
		}
		if tp.Pointer != 1 || tp.Cells[0] != 7 || tp.Cells[1] != 0 {
			t.Fatalf("got %v", tp.Snapshot())
		}
	})
}

func TestErrors(t *testing.T) {
	testRun(t, "", func(run Run, dir string) {
		err := run(context.Background(), Options{
			Location: filepath.Join(dir, "missing.bf"),
		}, nil, nil)
		if !errors.Is(err, sources.ErrUnavailable) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}

		path := writeSource(t, dir, "[+")
		for _, gen := range []bool{false, true} {
			out := new(bytes.Buffer)
			err = run(context.Background(), Options{
				Location: path,
				Gen:      gen,
			}, nil, out)
			if !errors.Is(err, program.ErrUnbalanced) {
				t.Fatalf("got %v", err)
			}
			if out.Len() != 0 {
				t.Fatalf("got %q", out.String())
			}
		}

		path = writeSource(t, dir, ",")
		err = run(context.Background(), Options{
			Location: path,
		}, strings.NewReader(""), nil)
		if !errors.Is(err, engine.ErrInputExhausted) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestDumpConflict(t *testing.T) {
	testRun(t, "", func(run Run, dir string) {
		path := writeSource(t, dir, "+.")
		dumpPath := filepath.Join(dir, "tape.yaml")
		for _, options := range []Options{
			{Location: path, DumpPath: dumpPath, Gen: true},
			{Location: path, DumpPath: dumpPath, ViaStarlark: true},
		} {
			out := new(bytes.Buffer)
			err := run(context.Background(), options, nil, out)
			if !errors.Is(err, ErrDumpConflict) {
				t.Fatalf("got %v", err)
			}
			if out.Len() != 0 {
				t.Fatalf("got %q", out.String())
			}
		}
		if _, err := os.Stat(dumpPath); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestInvalidConfig(t *testing.T) {
	testRun(t, `eof: `, func(run Run, dir string) {
		path := writeSource(t, dir, "+.")
		out := new(bytes.Buffer)
		err := run(context.Background(), Options{
			Location: path,
		}, nil, out)
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.HasPrefix(err.Error(), "config: ") {
			t.Fatalf("got %v", err)
		}
		if out.Len() != 0 {
			t.Fatalf("got %q", out.String())
		}
	})
}
