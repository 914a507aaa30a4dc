package scripts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/feaconfigs"
	"github.com/typesupply/feafofum/feas"
	"github.com/typesupply/feafofum/modes"
	"go.starlark.net/starlark"
)

func evaluateIn(t *testing.T, defs ...any) Evaluate {
	var evaluate Evaluate
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(defs...).Call(func(
		e Evaluate,
	) {
		evaluate = e
	})
	return evaluate
}

func TestEvaluatePrint(t *testing.T) {
	evaluate := evaluateIn(t)
	result := evaluate(context.Background(), "test", `
for i in range(3):
    print("line", i)
`, Namespace{
		Writer: feas.NewWriter(""),
	})
	if result.Errors != "" {
		t.Fatalf("got %q", result.Errors)
	}
	if diff := cmp.Diff("line 0\nline 1\nline 2\n", result.Output); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateCompileError(t *testing.T) {
	evaluate := evaluateIn(t)
	result := evaluate(context.Background(), "test", "print('a')\nx = = 1", Namespace{
		Writer: feas.NewWriter(""),
	})
	if result.Output != "" {
		t.Fatalf("got %q", result.Output)
	}
	if !strings.Contains(result.Errors, "SyntaxError") {
		t.Fatalf("got %q", result.Errors)
	}
	if !strings.Contains(result.Errors, `File "test", line 2`) {
		t.Fatalf("got %q", result.Errors)
	}

	// undefined names are reported before running
	result = evaluate(context.Background(), "test", "print('a')\nprint(nope)", Namespace{
		Writer: feas.NewWriter(""),
	})
	if result.Output != "" {
		t.Fatalf("got %q", result.Output)
	}
	if !strings.Contains(result.Errors, "undefined: nope") {
		t.Fatalf("got %q", result.Errors)
	}
}

func TestEvaluateRuntimeError(t *testing.T) {
	evaluate := evaluateIn(t)
	result := evaluate(context.Background(), "test", "print('before')\nfail('boom')", Namespace{
		Writer: feas.NewWriter(""),
	})
	if result.Output != "before\n" {
		t.Fatalf("got %q", result.Output)
	}
	if !strings.HasPrefix(result.Errors, "Traceback (most recent call last):\n  test:2:") {
		t.Fatalf("got %q", result.Errors)
	}
	if !strings.Contains(result.Errors, "boom") {
		t.Fatalf("got %q", result.Errors)
	}
}

func TestEvaluatePanic(t *testing.T) {
	evaluate := evaluateIn(t)
	result := evaluate(context.Background(), "test", "print(font)", Namespace{
		Document: make(chan int),
		Writer:   feas.NewWriter(""),
	})
	if !strings.Contains(result.Errors, "unsupported type for starlark") {
		t.Fatalf("got %q", result.Errors)
	}
}

func TestEvaluateDocument(t *testing.T) {
	evaluate := evaluateIn(t)

	type glyph struct {
		Name string
	}
	type doc struct {
		Path   string
		Glyphs []glyph
	}
	result := evaluate(context.Background(), "test", `
print(font.Path)
print([g.Name for g in font.Glyphs])
`, Namespace{
		Document: &doc{
			Path:   "/fonts/a.ufo",
			Glyphs: []glyph{{"a"}, {"b"}},
		},
		Writer: feas.NewWriter(""),
	})
	if result.Errors != "" {
		t.Fatalf("got %q", result.Errors)
	}
	if diff := cmp.Diff("/fonts/a.ufo\n[\"a\", \"b\"]\n", result.Output); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	// native values are bound as they are, so mutations persist
	dict := starlark.NewDict(1)
	ns := Namespace{
		Document: dict,
		Writer:   feas.NewWriter(""),
	}
	result = evaluate(context.Background(), "test", `font["seen"] = True`, ns)
	if result.Errors != "" {
		t.Fatalf("got %q", result.Errors)
	}
	result = evaluate(context.Background(), "test", `print(font["seen"])`, ns)
	if result.Output != "True\n" {
		t.Fatalf("got %q, %q", result.Output, result.Errors)
	}
}

func TestEvaluateWriter(t *testing.T) {
	evaluate := evaluateIn(t)
	writer := feas.NewWriter("\t")
	result := evaluate(context.Background(), "test", `
f = writer.feature("liga")
f.substitution(["f", "i"], "f_i")
print(writer.write())
`, Namespace{
		Writer: writer,
	})
	if result.Errors != "" {
		t.Fatalf("got %q", result.Errors)
	}
	if diff := cmp.Diff("\n\nfeature liga {\n\tsub f i by f_i;\n} liga;\n\n", result.Output); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if len(writer.Ops()) != 1 {
		t.Fatalf("got %v", writer.Ops())
	}
}

func TestEvaluateMaxSteps(t *testing.T) {
	evaluate := evaluateIn(t, func() feaconfigs.MaxExecutionSteps {
		return 1000
	})
	result := evaluate(context.Background(), "test", "while True:\n    pass", Namespace{
		Writer: feas.NewWriter(""),
	})
	if !strings.Contains(result.Errors, "too many steps") {
		t.Fatalf("got %q", result.Errors)
	}
}

func TestEvaluateTimeout(t *testing.T) {
	evaluate := evaluateIn(t, func() feaconfigs.ScriptTimeout {
		return feaconfigs.ScriptTimeout(20 * time.Millisecond)
	})
	result := evaluate(context.Background(), "test", "while True:\n    pass", Namespace{
		Writer: feas.NewWriter(""),
	})
	if !strings.Contains(result.Errors, "cancelled") {
		t.Fatalf("got %q", result.Errors)
	}
}

func TestEvaluateContextCancel(t *testing.T) {
	evaluate := evaluateIn(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := evaluate(ctx, "test", "while True:\n    pass", Namespace{
		Writer: feas.NewWriter(""),
	})
	if !strings.Contains(result.Errors, "context canceled") {
		t.Fatalf("got %q", result.Errors)
	}
}
