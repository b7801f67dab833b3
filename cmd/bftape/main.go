package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

var (
	fileFlag        = cmds.Var[string]("-file", "program file path or http(s) url")
	genFlag         = cmds.Switch("-gen", "print the translated program instead of running it")
	viaStarlarkFlag = cmds.Switch("-via-starlark", "run the program through the starlark translation")
	dumpFlag        = cmds.Var[string]("-dump", "write the final tape as yaml to this path, interpretation only")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <path or url> is required")
		os.Exit(1)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		if err := run(context.Background(), Options{
			Location:    *fileFlag,
			Gen:         *genFlag,
			ViaStarlark: *viaStarlarkFlag,
			DumpPath:    *dumpFlag,
		}, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	})
}
