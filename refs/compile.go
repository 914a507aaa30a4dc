package refs

import (
	"context"
	"errors"
	"fmt"

	"github.com/typesupply/feafofum/files"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/templates"
)

// MaxReferenceDepth is the deepest level at which an included file may still be compiled.
const MaxReferenceDepth = 5

var ErrReferenceDepthExceeded = errors.New("maximum reference file recursion depth exceeded")

// CompileText resolves include statements relative to baseDir, then expands code blocks.
// An empty baseDir disables resolution.
type CompileText func(
	ctx context.Context,
	text string,
	document any,
	baseDir string,
	verbose bool,
	depth int,
) (string, []Pair, error)

func (Module) CompileText(
	expand templates.Expand,
) CompileText {
	return func(
		ctx context.Context,
		text string,
		document any,
		baseDir string,
		verbose bool,
		depth int,
	) (string, []Pair, error) {
		var pairs []Pair
		if baseDir != "" {
			if depth > MaxReferenceDepth {
				return "", nil, fmt.Errorf("depth %d: %w", depth, ErrReferenceDepthExceeded)
			}
			text, pairs = Resolve(text, baseDir)
		}
		text, err := expand(ctx, text, document, verbose)
		if err != nil {
			return "", nil, err
		}
		return text, pairs, nil
	}
}

// CompileReferencedFile compiles inPath into outPath, then every file it includes, depth first.
// A missing inPath is not an error.
type CompileReferencedFile func(
	ctx context.Context,
	inPath string,
	outPath string,
	baseDir string,
	document any,
	depth int,
) error

func (Module) CompileReferencedFile(
	compileText CompileText,
	readFile files.ReadFile,
	writeFile files.WriteFile,
	exists files.Exists,
	newSpan logs.NewSpan,
	logger logs.Logger,
) (compile CompileReferencedFile) {
	compile = func(
		ctx context.Context,
		inPath string,
		outPath string,
		baseDir string,
		document any,
		depth int,
	) (err error) {
		ok, err := exists(inPath)
		if err != nil {
			return err
		}
		if !ok {
			logger.DebugContext(ctx, "referenced file not found",
				"path", inPath,
			)
			return nil
		}

		ctx, _ = newSpan(ctx, "", "file", inPath)
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()
		logger.InfoContext(ctx, "compile referenced file",
			"in", inPath,
			"out", outPath,
			"depth", depth,
		)

		text, err := readFile(ctx, inPath)
		if err != nil {
			return err
		}
		text, pairs, err := compileText(ctx, text, document, baseDir, false, depth)
		if err != nil {
			return fmt.Errorf("compile %s: %w", inPath, err)
		}
		if err := writeFile(ctx, outPath, text); err != nil {
			return err
		}

		for _, pair := range pairs {
			if err := compile(ctx, pair.In, pair.Out, baseDir, document, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return
}
