package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
verbose?: bool
script_timeout?: string
max_execution_steps?: int
suffixes?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var timeout string
	err := loader.AssignFirst("script_timeout", &timeout)
	if err != nil {
		t.Fatal(err)
	}
	if timeout != "2s" {
		t.Fatalf("got %q", timeout)
	}

	var suffixes []string
	err = loader.AssignFirst("suffixes", &suffixes)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", suffixes); str != "[-c -compiled]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("verbose_not_defined", &suffixes)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestFirstFileWins(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	if str := First[string](loader, "script_timeout"); str != "2s" {
		t.Fatalf("got %q", str)
	}
	if n := First[int](loader, "max_execution_steps"); n != 100000 {
		t.Fatalf("got %v", n)
	}

	loader = NewLoader([]string{
		"test2.cue",
		"test.cue",
	}, testSchema)
	if str := First[string](loader, "script_timeout"); str != "5s" {
		t.Fatalf("got %q", str)
	}
	// only set in the second file
	if !First[bool](loader, "verbose") {
		t.Fatal()
	}
}

func TestDecodeError(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	var n int
	err := loader.AssignFirst("script_timeout", &n)
	if err == nil || errors.Is(err, ErrValueNotFound) {
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

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if v := First[bool](loader, "verbose"); v {
		t.Fatal()
	}
}
