package sources

import (
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}
