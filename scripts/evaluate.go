package scripts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/typesupply/feafofum/feaconfigs"
	"github.com/typesupply/feafofum/feas"
	"github.com/typesupply/feafofum/logs"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// names bound in every script
const (
	DocumentName = "font"
	WriterName   = "writer"
)

type Namespace struct {
	Document any
	Writer   *feas.Writer
}

// Result holds what a script printed and the trace of its failure, if any.
type Result struct {
	Output string
	Errors string
}

// Evaluate runs code against ns. Failures are reported in Result.Errors, never returned.
type Evaluate func(ctx context.Context, name string, code string, ns Namespace) Result

// FileOptions are the dialect options of script blocks.
var FileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

func (Module) Evaluate(
	logger logs.Logger,
	timeout feaconfigs.ScriptTimeout,
	maxSteps feaconfigs.MaxExecutionSteps,
) Evaluate {
	return func(ctx context.Context, name string, code string, ns Namespace) Result {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout))
			defer cancel()
		}

		return capture(func(stdout, stderr io.Writer) {
			thread := &starlark.Thread{
				Name: name,
				Print: func(_ *starlark.Thread, msg string) {
					fmt.Fprintln(stdout, msg)
				},
			}
			if maxSteps > 0 {
				thread.SetMaxExecutionSteps(uint64(maxSteps))
			}
			stop := context.AfterFunc(ctx, func() {
				thread.Cancel(context.Cause(ctx).Error())
			})
			defer stop()

			predeclared := Predeclared(ns)
			_, program, err := starlark.SourceProgramOptions(FileOptions, name, code, predeclared.Has)
			if err != nil {
				writeCompileError(stderr, err)
				return
			}

			logger.DebugContext(ctx, "run script", "name", name)
			if _, err := program.Init(thread, predeclared); err != nil {
				writeRuntimeError(stderr, err)
			}
		})
	}
}

// Predeclared returns the globals a script sees.
func Predeclared(ns Namespace) starlark.StringDict {
	return starlark.StringDict{
		DocumentName: DocumentValue(ns.Document),
		WriterName:   NewWriterValue(ns.Writer),
	}
}

// capture runs fn with fresh output and error streams and returns what was written to them.
// The streams are released on every exit path; a panic in fn is written to the error stream.
func capture(fn func(stdout, stderr io.Writer)) (ret Result) {
	stdout := new(strings.Builder)
	stderr := new(strings.Builder)
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(stderr, "Traceback (most recent call last):\nError: %v\n", p)
		}
		ret = Result{
			Output: stdout.String(),
			Errors: stderr.String(),
		}
	}()
	fn(stdout, stderr)
	return
}

// writeCompileError reports a parse or resolve failure as a single frame.
func writeCompileError(w io.Writer, err error) {
	var syntaxErr syntax.Error
	var resolveErrs resolve.ErrorList
	switch {
	case errors.As(err, &syntaxErr):
		writeSyntaxFrame(w, syntaxErr.Pos, syntaxErr.Msg)
	case errors.As(err, &resolveErrs) && len(resolveErrs) > 0:
		writeSyntaxFrame(w, resolveErrs[0].Pos, resolveErrs[0].Msg)
	default:
		fmt.Fprintf(w, "SyntaxError: %v\n", err)
	}
}

func writeSyntaxFrame(w io.Writer, pos syntax.Position, msg string) {
	fmt.Fprintf(w, "  File %q, line %d, column %d\n", pos.Filename(), pos.Line, pos.Col)
	fmt.Fprintf(w, "SyntaxError: %s\n", msg)
}

// writeRuntimeError reports a failed run.
// Starlark stacks hold no host frame, so the trace starts at the first frame of the script.
func writeRuntimeError(w io.Writer, err error) {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		fmt.Fprintln(w, evalErr.Backtrace())
		return
	}
	fmt.Fprintf(w, "Traceback (most recent call last):\nError: %v\n", err)
}
