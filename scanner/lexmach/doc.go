/*
Package lexmach provides an adapter to use the lexmachine scanner generator as
the recognizer of a descent scanner.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.
Package lexmach is very opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token
	}

Having that, clients use `NewRecognizer` to compile the DFA.
NewRecognizer will return an error if compiling the DFA failed.

	rec, err := lexmach.NewRecognizer(init, literals, keywords, tokenIds)
	if err != nil {
		// do error handling
	}

The recognizer is then plugged into a scanner.Scanner, which takes care of
white space and comments. There is no need to add patterns for comments to
the DFA.

	sc := scanner.New(rec, scanner.LineComment("//"))
	sc.ScanTextForTokens("input string to tokenize")

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
