package scripts

import (
	"errors"
	"testing"
)

func TestParseBlock(t *testing.T) {
	testCases := []struct {
		name       string
		lines      []string
		code       string
		whitespace string
		indent     string
	}{
		{
			"no prefix",
			[]string{"# x = 1", "#", "# print(x)"},
			"x = 1\n\nprint(x)",
			"\t",
			"",
		},
		{
			"spaces",
			[]string{"    # for i in range(2):", "", "    #     print(i)", "    #"},
			"for i in range(2):\n    print(i)\n",
			" ",
			"    ",
		},
		{
			"tabs",
			[]string{"\t\t# print(1)", "   ", "\t# print(2)"},
			"print(1)\nprint(2)",
			"\t",
			"\t\t",
		},
		{
			"empty",
			nil,
			"",
			"\t",
			"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			source, err := ParseBlock(tc.lines)
			if err != nil {
				t.Fatal(err)
			}
			if source.Code != tc.code {
				t.Fatalf("got %q", source.Code)
			}
			if source.Whitespace != tc.whitespace {
				t.Fatalf("got %q", source.Whitespace)
			}
			if source.Indent != tc.indent {
				t.Fatalf("got %q", source.Indent)
			}
		})
	}
}

func TestParseBlockSyntaxViolation(t *testing.T) {
	_, err := ParseBlock([]string{
		"# print(1)",
		"sub a by b;",
	})
	if !errors.Is(err, ErrCodeBlockSyntax) {
		t.Fatalf("got %v", err)
	}

	_, err = ParseBlock([]string{
		"#print(1)",
	})
	if !errors.Is(err, ErrCodeBlockSyntax) {
		t.Fatalf("got %v", err)
	}
}
