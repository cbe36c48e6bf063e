package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffDocs(cc.Out, args[0], args[1], a, b, cfg.colorize(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the difference between a and b to w and reports whether
// there is one.
func diffDocs(w io.Writer, aName, bName string, a, b *ir.Node, color bool) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	as, err := encode.ToString(a)
	if err != nil {
		return false, err
	}
	bs, err := encode.ToString(b)
	if err != nil {
		return false, err
	}
	if jsonpatch.Equal([]byte(as), []byte(bs)) {
		_, err := fmt.Fprintf(w, "%s and %s differ only in member order\n", aName, bName)
		return true, err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(as, bs, false))
	var text string
	if color {
		text = dmp.DiffPrettyText(diffs)
	} else {
		text = plainDiff(diffs)
	}
	_, err = fmt.Fprintf(w, "--- %s\n+++ %s\n%s\n", aName, bName, text)
	return true, err
}

// plainDiff renders diffs as text, deletions in [-...-] and insertions in
// {+...+}.
func plainDiff(diffs []diffpatch.Diff) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
