/*
Command loxrepl provides an interactive command line tool for Lox
expressions. Every line entered is scanned and parsed, and the resulting
expressions are printed in prefix notation. Optionally, tokens are shown as
a table and expressions as trees.

loxrepl serves as a sandbox for experiments with the scanner and parser
packages of this module.

	loxrepl [-trace Debug] [-tokens] [-tree] [-record-comments] [-init file] [expr …]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'descent.lox'
func tracer() tracing.Trace {
	return tracing.Select("descent.lox")
}
