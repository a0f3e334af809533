package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/descent/ast"
	"github.com/npillmayer/descent/lox"
	"github.com/npillmayer/descent/scanner"
)

// trace keys of the packages involved; trace levels are set by flag
var traceKeys = []string{"descent.scanner", "descent.parser", "descent.lox"}

// main() starts an interactive CLI, where users may enter Lox expressions.
// Each line will be parsed and the resulting expressions printed.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	showTokens := flag.Bool("tokens", false, "Print tokens as a table")
	showTree := flag.Bool("tree", false, "Print expressions as trees")
	recordComments := flag.Bool("record-comments", false, "Record comments as tokens")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	pterm.Info.Println("Welcome to LoxREPL") // colored welcome message
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	intp := &Intp{
		scanner:    lox.NewScanner(scanner.RecordComments(*recordComments)),
		parser:     lox.NewParser(),
		showTokens: *showTokens,
		showTree:   *showTree,
	}
	if input != "" { // evaluate command line and exit
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("lox> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)               // init file name provided by flag
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	scanner    *scanner.Scanner
	parser     *lox.Parser
	repl       *readline.Instance
	showTokens bool
	showTree   bool
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	lines := bufio.NewScanner(f)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error in line %d of %s", lineno, filename)
		}
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line) // errors have been printed already
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval scans and parses a line of input and prints the result.
// Lines starting with ':' are commands.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	intp.scanner.ScanTextForTokens(line)
	if intp.showTokens {
		printTokens(intp.scanner.Tokens())
	}
	stmts := intp.parser.ParseTokens(intp.scanner.Tokens())
	var errs descent.ErrorList
	errs.Append(intp.scanner.Errors())
	errs.Append(intp.parser.Errors())
	for _, e := range errs.Errors() {
		pterm.Error.Println(e.Error())
	}
	for _, stmt := range stmts {
		pterm.Info.Println(ast.String(stmt.Expression))
		if intp.showTree {
			root := pterm.NewTreeFromLeveledList(leveledExpr(stmt.Expression, pterm.LeveledList{}, 0))
			pterm.DefaultTree.WithRoot(root).Render()
		}
	}
	return false, errs.Err()
}

// command executes a REPL command. Commands are
//
//     :quit
//     :tokens on|off
//     :tree on|off
//
func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "tokens":
		intp.showTokens = len(args) < 2 || args[1] == "on"
		return false, nil
	case "tree":
		intp.showTree = len(args) < 2 || args[1] == "on"
		return false, nil
	}
	err := fmt.Errorf("unknown command :%s", args[0])
	pterm.Error.Println(err.Error())
	return false, err
}

func printTokens(tokens []descent.Token) {
	data := pterm.TableData{{"Type", "Lexeme", "Location", "Span", "Value"}}
	for _, t := range tokens {
		value := ""
		if t.Literal != nil {
			value = fmt.Sprintf("%v", t.Literal)
		}
		data = append(data, []string{
			lox.TokenName(t.Type), fmt.Sprintf("%q", t.Lexeme),
			t.Location.String(), t.Span.String(), value,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// leveledExpr flattens an expression tree into a pterm leveled list, in pre-order.
func leveledExpr(expr ast.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  ast.Label(expr),
	})
	for _, child := range ast.Children(expr) {
		ll = leveledExpr(child, ll, level+1)
	}
	return ll
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
