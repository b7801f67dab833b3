package main

import (
	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/engine"
	"github.com/reusee/bftape/sources"
	"github.com/reusee/bftape/starlarks"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs   bfconfigs.Module
	Engine    engine.Module
	Sources   sources.Module
	Starlarks starlarks.Module
}
