package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/parse"

	"github.com/scott-cotton/cli"
)

// readInput reads the file at path, or the command input for "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parseDoc(d, opts...)
}

// parseDoc parses a whole file. Files are not NUL terminated, so the
// parse is bounded by the file size.
func parseDoc(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	if len(d) == 0 {
		return parse.Parse(d, opts...)
	}
	return parse.ParseN(d, len(d), opts...)
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
