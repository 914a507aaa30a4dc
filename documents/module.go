package documents

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/files"
	"github.com/typesupply/feafofum/logs"
)

type Module struct {
	dscope.Module
	Files files.Module
	Logs  logs.Module
}
