package templates

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/scripts"
)

type Module struct {
	dscope.Module
	Scripts scripts.Module
	Logs    logs.Module
}
