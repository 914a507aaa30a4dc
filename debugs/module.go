package debugs

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
