package compiles

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/refs"
)

type Module struct {
	dscope.Module
	Refs refs.Module
	Logs logs.Module
}
