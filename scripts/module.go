package scripts

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/feaconfigs"
	"github.com/typesupply/feafofum/logs"
)

type Module struct {
	dscope.Module
	Feaconfigs feaconfigs.Module
	Logs       logs.Module
}
