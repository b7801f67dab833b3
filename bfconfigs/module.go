package bfconfigs

import (
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
