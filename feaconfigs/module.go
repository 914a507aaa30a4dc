package feaconfigs

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/configs"
	"github.com/typesupply/feafofum/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
