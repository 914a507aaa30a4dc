package refs

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/files"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/templates"
)

type Module struct {
	dscope.Module
	Templates templates.Module
	Files     files.Module
	Logs      logs.Module
}
