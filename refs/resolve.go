package refs

import (
	"strings"
)

// Pair is an included file and the path its compiled copy is written to.
type Pair struct {
	In  string
	Out string
}

// Resolve rewrites every occurrence of the found include statements to point at compiled copies and returns the files to compile.
// Paths in the returned pairs are joined to baseDir and cleaned.
func Resolve(text string, baseDir string) (string, []Pair) {
	mappings := FindReferences(text)
	if len(mappings) == 0 {
		return text, nil
	}

	var pairs []Pair
	var replacer []string
	for _, mapping := range mappings {
		pairs = append(pairs, Pair{
			In:  joinPath(baseDir, mapping.Path),
			Out: joinPath(baseDir, mapping.OutPath),
		})
		for _, directive := range mapping.Directives {
			replacer = append(replacer, directive.Text, directive.Replacement)
		}
	}

	// every occurrence, including ones inside comments and script blocks
	ret := strings.NewReplacer(replacer...).Replace(text)

	return ret, pairs
}
