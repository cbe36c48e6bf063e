package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsontree/ir"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		_, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err := writeCheck(cc.Out, file, err, cfg.Verbose); err != nil {
			return err
		}
		if err != nil {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeCheck(w io.Writer, file string, err error, verbose bool) error {
	var werr error
	if verbose && err != nil {
		_, werr = fmt.Fprintf(w, "%s: %s: %v\n", file, ir.CodeOf(err), err)
	} else {
		_, werr = fmt.Fprintf(w, "%s: %s\n", file, ir.CodeOf(err))
	}
	return werr
}
