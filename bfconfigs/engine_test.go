package bfconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/engine"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		policy engine.EOFPolicy,
		target engine.Target,
	) {
		if policy != engine.EOFError {
			t.Fatalf("got %v", policy)
		}
		if target != engine.TargetC {
			t.Fatalf("got %v", target)
		}
	})
}

func TestFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bftape.cue")
	if err := os.WriteFile(path, []byte(`
eof: "keep"
target: "starlark"
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	).Call(func(
		policy engine.EOFPolicy,
		target engine.Target,
	) {
		if policy != engine.EOFKeep {
			t.Fatalf("got %v", policy)
		}
		if target != engine.TargetStarlark {
			t.Fatalf("got %v", target)
		}
	})
}

func TestFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bftape.cue")
	if err := os.WriteFile(path, []byte(`eof: "keep"`), 0644); err != nil {
		t.Fatal(err)
	}
	defer func() {
		eofFlag = ""
	}()
	if err := cmds.GlobalExecutor.Execute([]string{"-eof", "max"}); err != nil {
		t.Fatal(err)
	}
	if err := cmds.GlobalExecutor.Execute([]string{"-eof", "never"}); err == nil {
		t.Fatal("should error")
	}
	if eofFlag != engine.EOFMax {
		t.Fatalf("got %v", eofFlag)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	).Call(func(
		policy engine.EOFPolicy,
	) {
		if policy != engine.EOFMax {
			t.Fatalf("got %v", policy)
		}
	})
}

func TestFindFiles(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir1, ".bftape.cue"), []byte(`target: "go"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir2, "bftape.cue"), []byte(`target: "c"`), 0644); err != nil {
		t.Fatal(err)
	}
	paths := findFiles([]string{dir1, dir2})
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
	loader := configs.NewLoader(paths, schema)
	target, err := configs.First[engine.Target](loader, "target")
	if err != nil {
		t.Fatal(err)
	}
	if target != engine.TargetGo {
		t.Fatalf("got %v", target)
	}
}

func TestSchemaRejectsUnknownTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bftape.cue")
	if err := os.WriteFile(path, []byte(`target: "cobol"`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	var target string
	if err := loader.AssignFirst("target", &target); err == nil {
		t.Fatal("should error")
	}
}

func TestRejectedTargetKeepsPrevious(t *testing.T) {
	defer func() {
		targetFlag = ""
	}()
	if err := cmds.GlobalExecutor.Execute([]string{"-target=go"}); err != nil {
		t.Fatal(err)
	}
	if err := cmds.GlobalExecutor.Execute([]string{"-target=cobol"}); err == nil {
		t.Fatal("should error")
	}
	if targetFlag != engine.TargetGo {
		t.Fatalf("got %v", targetFlag)
	}
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bftape.cue")
	if err := os.WriteFile(path, []byte(`eof: "never"`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	if err := loader.Validate(); err == nil {
		t.Fatal("should error")
	}

	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return loader
		},
	)

	scope.Call(func(
		policy engine.EOFPolicy,
		target engine.Target,
	) {
		if policy != engine.EOFError {
			t.Fatalf("got %v", policy)
		}
		if target != engine.TargetC {
			t.Fatalf("got %v", target)
		}
	})

	defer func() {
		eofFlag = ""
	}()
	eofFlag = engine.EOFZero
	scope.Fork(
		func() configs.Loader {
			return loader
		},
	).Call(func(
		policy engine.EOFPolicy,
	) {
		if policy != engine.EOFZero {
			t.Fatalf("got %v", policy)
		}
	})
}
