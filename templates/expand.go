package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/scripts"
)

// Expand replaces every code block in text with the lines its script produces.
// Blocks run top to bottom against the same document.
type Expand func(ctx context.Context, text string, document any, verbose bool) (string, error)

func (Module) Expand(
	executeBlock scripts.ExecuteBlock,
	logger logs.Logger,
) Expand {
	return func(ctx context.Context, text string, document any, verbose bool) (string, error) {
		// converted once so every block shares one value
		document = scripts.DocumentValue(document)

		lines, trailingNewline := SplitLines(text)
		processed := make([]string, 0, len(lines))

		var block []string
		collecting := false
		blockStart := 0

		for i, line := range lines {
			switch strings.TrimSpace(line) {

			case scripts.StartMarker:
				// an unterminated block before this one is discarded
				block = []string{}
				collecting = true
				blockStart = i + 1

			case scripts.EndMarker:
				logger.DebugContext(ctx, "execute code block",
					"line", blockStart,
					"lines", len(block),
				)
				out, err := executeBlock(ctx, block, document, verbose)
				if err != nil {
					return "", fmt.Errorf("code block at line %d: %w", blockStart, err)
				}
				processed = append(processed, out...)
				block = nil
				collecting = false

			default:
				if collecting {
					block = append(block, line)
				} else {
					processed = append(processed, line)
				}

			}
		}

		if collecting {
			logger.WarnContext(ctx, "unterminated code block dropped",
				"line", blockStart,
				"lines", len(block),
			)
		}

		ret := strings.Join(processed, "\n")
		if trailingNewline {
			ret += "\n"
		}
		return ret, nil
	}
}

// SplitLines splits text at line breaks and reports whether it ended with one.
func SplitLines(text string) (lines []string, trailingNewline bool) {
	if text == "" {
		return nil, false
	}
	trailingNewline = strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	lines = strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, trailingNewline
}
