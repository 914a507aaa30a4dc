package compiles

import (
	"context"
	"path/filepath"

	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/refs"
	"github.com/typesupply/feafofum/scripts"
)

// Document is the object scripts see as font.
// An empty path disables reference resolution.
type Document interface {
	Path() string
}

type Options struct {
	// Verbose keeps every code block in the output, above the lines it produced.
	Verbose bool
	// ResolveReferences compiles included files next to their originals and points the includes at them.
	// Paths are relative to the directory containing the document.
	ResolveReferences bool
}

// Compile expands text against document.
// Included files are written as a side effect; the returned text only has the rewritten includes.
type Compile func(ctx context.Context, text string, document Document, opts Options) (string, error)

func (Module) Compile(
	compileText refs.CompileText,
	compileReferencedFile refs.CompileReferencedFile,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, text string, document Document, opts Options) (string, error) {
		var baseDir string
		if opts.ResolveReferences && document != nil {
			if path := document.Path(); path != "" {
				baseDir = filepath.Dir(path)
			}
		}
		logger.DebugContext(ctx, "compile",
			"verbose", opts.Verbose,
			"base dir", baseDir,
		)

		// the top text and every referenced file share one script value
		var value any
		if document != nil {
			value = scripts.DocumentValue(document)
		}

		text, pairs, err := compileText(ctx, text, value, baseDir, opts.Verbose, 0)
		if err != nil {
			return "", err
		}
		for _, pair := range pairs {
			if err := compileReferencedFile(ctx, pair.In, pair.Out, baseDir, value, 0); err != nil {
				return "", err
			}
		}
		return text, nil
	}
}

// PathDocument is a document with nothing but a path.
type PathDocument string

func (p PathDocument) Path() string {
	return string(p)
}
