// Package debug holds opt-in diagnostics switched on by environment
// variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Init  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONTREE_DEBUG_PARSE")
	d.Init = boolEnv("JSONTREE_DEBUG_INIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether parser failures are logged.
func Parse() bool {
	return d.Parse
}

// Init reports whether process-wide initialization is logged.
func Init() bool {
	return d.Init
}
