package main

import (
	"fmt"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	switch len(args) {
	case 1:
		args = append(args, "-")
	case 2:
	default:
		return fmt.Errorf("%w: patch requires a patch file and at most one document, got %v", cli.ErrUsage, args)
	}
	pd, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	doc, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := applyPatch(doc, pd)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	w := cc.Out
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// applyPatch applies the RFC 6902 patch document pd to doc and returns the
// result as a new tree.
func applyPatch(doc *ir.Node, pd []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	d, err := encode.ToString(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply([]byte(d))
	if err != nil {
		return nil, err
	}
	return parseDoc(out)
}
