package main

import (
	"github.com/reusee/dscope"
	"github.com/typesupply/feafofum/compiles"
	"github.com/typesupply/feafofum/debugs"
	"github.com/typesupply/feafofum/documents"
	"github.com/typesupply/feafofum/feaconfigs"
)

type Module struct {
	dscope.Module
	Compiles   compiles.Module
	Documents  documents.Module
	Debugs     debugs.Module
	Feaconfigs feaconfigs.Module
}
