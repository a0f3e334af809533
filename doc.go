/*
Package descent is a small toolbox for hand-written language front ends.

It focusses on scanning with configurable comment syntax and on
recursive-descent parsing with error recovery. Package structure is
as follows:

■ scanner: Package scanner implements a comment-aware scanner driver. Grammars
plug in a Recognizer for their tokens. Sub-package lexmach provides a Recognizer
backed by the lexmachine DFA generator.

■ parser: Package parser implements a grammar-agnostic parser base, offering
cursor navigation over a token slice, error accumulation and panic-mode
synchronization.

■ ast: Package ast implements expression trees.

■ lox: Package lox implements a Lox-style expression grammar on top of
packages scanner and parser. Command cmd/loxrepl is an interactive sandbox
for it.

The base package contains data types which are used throughout all the other
packages: tokens, locations, spans and errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package descent
