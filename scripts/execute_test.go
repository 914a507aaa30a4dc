package scripts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/modes"
)

func TestExecuteBlock(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		execute ExecuteBlock,
	) {
		ctx := context.Background()
		block := []string{
			"\t# w = writer.feature('calt')",
			"\t# w.substitution('a', 'a.alt')",
			"\t# print(w.write())",
		}

		lines, err := execute(ctx, block, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{
			"\t\tsub a by a.alt;",
		}, lines); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}

		lines, err = execute(ctx, block, nil, true)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{
			"\t# >>>",
			"\t# w = writer.feature('calt')",
			"\t# w.substitution('a', 'a.alt')",
			"\t# print(w.write())",
			"\t# <<<",
			"",
			"\t\tsub a by a.alt;",
		}, lines); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestExecuteBlockError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		execute ExecuteBlock,
	) {
		block := []string{
			"  # print('partial')",
			"  # fail('bad glyph')",
		}
		lines, err := execute(context.Background(), block, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{
			"  # >>>",
			"  # print('partial')",
			"  # fail('bad glyph')",
			"  # <<<",
			"",
			"  # Traceback (most recent call last):",
		}, lines[:6]); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
		last := lines[len(lines)-1]
		if last != "  partial" {
			t.Fatalf("got %q", last)
		}
		if blank := lines[len(lines)-2]; blank != "" {
			t.Fatalf("got %q", blank)
		}
		found := false
		for _, line := range lines {
			if strings.HasPrefix(line, "  # ") && strings.Contains(line, "bad glyph") {
				found = true
			}
		}
		if !found {
			t.Fatalf("got %q", lines)
		}
	})
}

func TestExecuteBlockSyntax(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		execute ExecuteBlock,
	) {
		_, err := execute(context.Background(), []string{
			"# print(1)",
			"feature liga {",
		}, nil, false)
		if !errors.Is(err, ErrCodeBlockSyntax) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		text  string
		lines []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.lines, splitLines(tc.text)); diff != "" {
			t.Fatalf("%q: mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}
