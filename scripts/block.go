package scripts

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	StartMarker = "# >>>"
	EndMarker   = "# <<<"
)

var ErrCodeBlockSyntax = errors.New("non-code found in code block")

// Source is the executable part of a code block.
type Source struct {
	Code string
	// Whitespace is the indent unit handed to the writer
	Whitespace string
	// Indent prefixes every line emitted in place of the block
	Indent string
}

// ParseBlock extracts code from the lines between the markers.
// Each non-blank line is either a bare "#" or "<prefix># <code>"; the prefix of the first code line sets the indent.
func ParseBlock(lines []string) (Source, error) {
	var prefix string
	found := false
	code := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if stripped == "#" {
			code = append(code, "")
			continue
		}
		if !strings.HasPrefix(stripped, "# ") {
			return Source{}, fmt.Errorf("%w: %s", ErrCodeBlockSyntax, stripped)
		}
		ws, rest, _ := strings.Cut(line, "# ")
		if !found {
			prefix = ws
			found = true
		}
		code = append(code, rest)
	}

	source := Source{
		Code:       strings.Join(code, "\n"),
		Whitespace: "\t",
	}
	if prefix != "" {
		_, size := utf8.DecodeRuneInString(prefix)
		source.Whitespace = prefix[:size]
		source.Indent = prefix
	}
	return source, nil
}
