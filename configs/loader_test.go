package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
eof?: "error" | "zero" | "max" | "keep"
target?: "c" | "go" | "starlark"
proxy_addr?: string
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("eof", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "zero" {
		t.Fatalf("got %q", str)
	}

	err = loader.AssignFirst("proxy_addr", &str)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderSource(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	path, err := loader.Source("proxy_addr")
	if err != nil {
		t.Fatal(err)
	}
	if path != "test2.cue" {
		t.Fatalf("got %v", path)
	}
	path, err = loader.Source("eof")
	if err != nil {
		t.Fatal(err)
	}
	if path != "test.cue" {
		t.Fatalf("got %v", path)
	}
	if _, err := loader.Source("nope"); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestSchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	if err := os.WriteFile(path, []byte(`target: "fortran"`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader([]string{path}, testSchema)
	var str string
	if err := loader.AssignFirst("target", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "none.cue"),
	}, testSchema)
	var str string
	if err := loader.AssignFirst("eof", &str); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := NewLoader([]string{"test.cue", "test2.cue"}, testSchema).Validate(); err != nil {
		t.Fatal(err)
	}
	if err := NewLoader([]string{"bad.cue"}, testSchema).Validate(); err == nil {
		t.Fatal("should error")
	}
}
