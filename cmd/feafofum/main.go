package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/cmds"
	"github.com/typesupply/feafofum/compiles"
	"github.com/typesupply/feafofum/debugs"
	"github.com/typesupply/feafofum/documents"
	"github.com/typesupply/feafofum/feaconfigs"
	"github.com/typesupply/feafofum/files"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/modes"
	"github.com/typesupply/feafofum/refs"
	"golang.org/x/term"
)

var (
	docPath = cmds.Var[string]("-doc", "font description file (yaml or json) bound as font")
	outPath = cmds.Var[string]("-out", "output path; defaults to the input path with -c before the extension, or standard output")
	saveDoc = cmds.Switch("-save-doc", "write the font back after compiling")
	doRepl  = cmds.Switch("-repl", "start an interactive script prompt instead of compiling")
)

var inputPaths []string

func init() {
	cmds.Define("-in", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil || len(paths) == 0 {
			// reported as missing when read
			inputPaths = append(inputPaths, pattern)
		} else {
			inputPaths = append(inputPaths, paths...)
		}
	}).Desc("template to compile, may be a glob. without any, read standard input"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		compile compiles.Compile,
		load documents.Load,
		save documents.Save,
		tap debugs.Tap,
		readFile files.ReadFile,
		writeFile files.WriteFile,
		newSpan logs.NewSpan,
		verbose feaconfigs.Verbose,
		resolveReferences feaconfigs.ResolveReferences,
	) {

		fail := func(err error, args ...any) {
			logger.ErrorContext(ctx, err.Error(), args...)
			os.Exit(1)
		}

		var document compiles.Document
		var font *documents.Font
		if *docPath != "" {
			var err error
			font, err = load(ctx, *docPath)
			if err != nil {
				fail(err, "doc", *docPath)
			}
			document = font
		}

		if *doRepl {
			tap(ctx, "repl", document)
			return
		}

		opts := compiles.Options{
			Verbose:           bool(verbose),
			ResolveReferences: bool(resolveReferences),
		}

		if len(inputPaths) == 0 {
			content := getStdinContent()
			text, err := compile(ctx, string(content), document, opts)
			if err != nil {
				fail(err)
			}
			if *outPath == "" {
				if _, err := io.WriteString(os.Stdout, text); err != nil {
					fail(err)
				}
			} else if err := writeFile(ctx, *outPath, text); err != nil {
				fail(err, "out", *outPath)
			}

		} else {
			if *outPath != "" && len(inputPaths) > 1 {
				fail(errMultipleInputs, "inputs", inputPaths)
			}
			for _, inPath := range inputPaths {
				ctx, _ := newSpan(ctx, "", "file", inPath)
				text, err := readFile(ctx, inPath)
				if err != nil {
					fail(logs.WrapSpan(ctx, err), "in", inPath)
				}
				text, err = compile(ctx, text, document, opts)
				if err != nil {
					fail(logs.WrapSpan(ctx, err), "in", inPath)
				}
				out := *outPath
				if out == "" {
					out = refs.OutputPath(inPath)
				}
				if err := writeFile(ctx, out, text); err != nil {
					fail(logs.WrapSpan(ctx, err), "out", out)
				}
				logger.InfoContext(ctx, "compiled",
					"in", inPath,
					"out", out,
				)
			}
		}

		if *saveDoc && font != nil {
			if err := save(ctx, font, font.Path()); err != nil {
				fail(err, "doc", font.Path())
			}
		}
	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}
	return
}
