package refs

import (
	"regexp"
	"strings"

	"github.com/typesupply/feafofum/templates"
)

var directivePattern = regexp.MustCompile(`include\s*\([^)]+\s*\)\s*;`)

// Directive is one spelling of an include statement and the statement replacing it.
type Directive struct {
	Text        string
	Replacement string
}

// Mapping describes every include statement referring to one path.
type Mapping struct {
	Path       string
	OutPath    string
	Directives []Directive
}

// FindReferences returns one mapping per distinct included path, in order of first appearance.
// Text after a '#' on a line is ignored, so script blocks and comments never contribute.
func FindReferences(text string) []Mapping {
	code := stripComments(text)
	var ret []Mapping
	index := make(map[string]int)
	seen := make(map[string]bool)
	for _, directive := range directivePattern.FindAllString(strings.Join(code, "\n"), -1) {
		if seen[directive] {
			continue
		}
		seen[directive] = true

		open := strings.Index(directive, "(")
		closing := strings.Index(directive, ")")
		inner := directive[open+1 : closing]
		path := strings.TrimSpace(inner)
		outPath := OutputPath(path)
		replacement := directive[:open+1] +
			strings.Replace(inner, path, outPath, 1) +
			directive[closing:]

		i, ok := index[path]
		if !ok {
			i = len(ret)
			index[path] = i
			ret = append(ret, Mapping{
				Path:    path,
				OutPath: outPath,
			})
		}
		ret[i].Directives = append(ret[i].Directives, Directive{
			Text:        directive,
			Replacement: replacement,
		})
	}
	return ret
}

func stripComments(text string) []string {
	lines, _ := templates.SplitLines(text)
	for i, line := range lines {
		lines[i], _, _ = strings.Cut(line, "#")
	}
	return lines
}
