package templates

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/modes"
	"github.com/typesupply/feafofum/scripts"
	"go.starlark.net/starlark"
)

func withExpand(t *testing.T, fn func(expand Expand)) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		expand Expand,
	) {
		fn(expand)
	})
}

func TestStaticTextUnchanged(t *testing.T) {
	withExpand(t, func(expand Expand) {
		for _, text := range []string{
			"",
			"languagesystem DFLT dflt;",
			"languagesystem DFLT dflt;\n\nfeature liga {\n    sub f i by f_i;\n} liga;\n",
			"# a comment\n#\n# >>>not a marker\n",
		} {
			got, err := expand(context.Background(), text, nil, false)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(text, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		}
	})
}

func TestExpandBlock(t *testing.T) {
	withExpand(t, func(expand Expand) {
		text := "languagesystem DFLT dflt;\n" +
			"\n" +
			"# >>>\n" +
			"# print('@lc = [a b];')\n" +
			"# <<<\n" +
			"\n" +
			"include(kern.fea);\n"
		got, err := expand(context.Background(), text, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		expected := "languagesystem DFLT dflt;\n" +
			"\n" +
			"@lc = [a b];\n" +
			"\n" +
			"include(kern.fea);\n"
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}

		// output is a fixed point
		again, err := expand(context.Background(), got, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(got, again); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestExpandVerbose(t *testing.T) {
	withExpand(t, func(expand Expand) {
		text := "feature liga {\n" +
			"    # >>>\n" +
			"    # print('sub f i by f_i;')\n" +
			"    # <<<\n" +
			"} liga;"
		got, err := expand(context.Background(), text, nil, true)
		if err != nil {
			t.Fatal(err)
		}
		expected := "feature liga {\n" +
			"    # >>>\n" +
			"    # print('sub f i by f_i;')\n" +
			"    # <<<\n" +
			"\n" +
			"    sub f i by f_i;\n" +
			"} liga;"
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBlocksShareDocument(t *testing.T) {
	withExpand(t, func(expand Expand) {
		document := starlark.NewDict(1)
		text := "# >>>\n" +
			"# font['count'] = 1\n" +
			"# <<<\n" +
			"# >>>\n" +
			"# font['count'] += 1\n" +
			"# print('# count', font['count'])\n" +
			"# <<<"
		got, err := expand(context.Background(), text, document, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("# count 2", got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBlocksShareGoDocument(t *testing.T) {
	type fontInfo struct {
		Lib map[string]any
	}
	withExpand(t, func(expand Expand) {
		text := "# >>>\n" +
			"# font['count'] = 1\n" +
			"# <<<\n" +
			"# >>>\n" +
			"# print('# count', font.get('count'))\n" +
			"# <<<"
		got, err := expand(context.Background(), text, map[string]any{}, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("# count 1", got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}

		text = "# >>>\n" +
			"# font.Lib['ss01'] = 'Alternate a'\n" +
			"# <<<\n" +
			"# >>>\n" +
			"# print('# ss01', font.Lib.get('ss01'))\n" +
			"# <<<"
		got, err = expand(context.Background(), text, &fontInfo{
			Lib: map[string]any{},
		}, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("# ss01 Alternate a", got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestUnterminatedBlockDropped(t *testing.T) {
	withExpand(t, func(expand Expand) {
		text := "a;\n# >>>\n# print('x')\nb;\n"
		got, err := expand(context.Background(), text, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("a;\n", got); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSyntaxViolationAborts(t *testing.T) {
	withExpand(t, func(expand Expand) {
		text := "a;\n# >>>\n# print('x')\nsub a by b;\n# <<<\n"
		_, err := expand(context.Background(), text, nil, false)
		if !errors.Is(err, scripts.ErrCodeBlockSyntax) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestScriptErrorContinues(t *testing.T) {
	withExpand(t, func(expand Expand) {
		text := "# >>>\n# fail('nope')\n# <<<\n# >>>\n# print('ok;')\n# <<<"
		got, err := expand(context.Background(), text, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		lines, _ := SplitLines(got)
		if lines[0] != "# >>>" || lines[1] != "# fail('nope')" || lines[2] != "# <<<" {
			t.Fatalf("got %q", got)
		}
		if last := lines[len(lines)-1]; last != "ok;" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestSplitLines(t *testing.T) {
	lines, trailing := SplitLines("a\r\nb\n")
	if diff := cmp.Diff([]string{"a", "b"}, lines); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if !trailing {
		t.Fatal()
	}
	lines, trailing = SplitLines("a")
	if len(lines) != 1 || trailing {
		t.Fatalf("got %v %v", lines, trailing)
	}
}
