package debugs

import (
	"context"

	"github.com/typesupply/feafofum/feas"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap reads script lines from the terminal and runs them with the names code blocks see.
type Tap func(ctx context.Context, what string, document any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, document any) {
		writer := feas.NewWriter("")
		logger.InfoContext(ctx, "tap: "+what,
			"globals", []string{scripts.DocumentName, scripts.WriterName},
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what,
				"statements", len(writer.Ops()),
			)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		repl.REPLOptions(scripts.FileOptions, thread, scripts.Predeclared(scripts.Namespace{
			Document: document,
			Writer:   writer,
		}))
	}
}
