package scripts

import (
	"context"
	"strings"

	"github.com/typesupply/feafofum/feas"
	"github.com/typesupply/feafofum/logs"
)

// ExecuteBlock runs the code block between a pair of markers and returns the lines replacing it.
// The only error is ErrCodeBlockSyntax; script failures become comment lines.
type ExecuteBlock func(ctx context.Context, lines []string, document any, verbose bool) ([]string, error)

const blockName = "<code block>"

func (Module) ExecuteBlock(
	evaluate Evaluate,
	logger logs.Logger,
) ExecuteBlock {
	return func(ctx context.Context, lines []string, document any, verbose bool) ([]string, error) {
		source, err := ParseBlock(lines)
		if err != nil {
			return nil, err
		}

		result := evaluate(ctx, blockName, source.Code, Namespace{
			Document: document,
			Writer:   feas.NewWriter(source.Whitespace),
		})

		var ret []string
		if verbose || result.Errors != "" {
			ret = append(ret, source.Indent+StartMarker)
			ret = append(ret, lines...)
			ret = append(ret, source.Indent+EndMarker)
			ret = append(ret, "")
			if result.Errors != "" {
				logger.WarnContext(ctx, "script failed",
					"errors", result.Errors,
				)
				for _, line := range splitLines(result.Errors) {
					ret = append(ret, source.Indent+"# "+line)
				}
				ret = append(ret, "")
			}
		}
		for _, line := range splitLines(result.Output) {
			ret = append(ret, source.Indent+line)
		}

		return ret, nil
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
