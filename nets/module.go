package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
