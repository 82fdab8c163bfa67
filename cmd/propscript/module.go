package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/propscript/debugs"
	"github.com/reusee/propscript/engines"
)

type Module struct {
	dscope.Module
	Debugs  debugs.Module
	Engines engines.Module
}
