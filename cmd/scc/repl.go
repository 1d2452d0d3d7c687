package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/scc-lang/scc"
	"github.com/scc-lang/scc/internal/ast"
	"github.com/scc-lang/scc/internal/diag"
)

// blueColor and yellowColor round out go-mix repl.go's palette; red and
// cyan are already declared in main.go and reused here.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
)

const (
	replLine   = "----------------------------------------------------------------"
	replPrompt = "scc >>> "
	replBanner = `            _____
  ___  ___ / ___/
 / _ |/ __//___ \
/ __ |/ /  ____/ /
/_/ |_/_/  /____/
`
)

// printBanner prints the interactive-mode welcome banner, the same
// four-line layout go-mix's repl.PrintBannerInfo uses.
func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", replLine)
	greenColor.Fprintf(w, "%s\n", replBanner)
	blueColor.Fprintf(w, "%s\n", replLine)
	yellowColor.Fprintln(w, "scc "+VERSION+" -- translates one statement at a time against a shared compile unit")
	blueColor.Fprintf(w, "%s\n", replLine)
	cyanColor.Fprintf(w, "%s\n", "Type a statement and press enter; the translation of everything")
	cyanColor.Fprintf(w, "%s\n", "entered so far is printed below. Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", replLine)
}

// startInteractive runs scc's interactive mode: unlike go-mix's REPL,
// there is no value to evaluate and print, only a fragment to
// translate and print, but the loop shape (readline, history, panic
// recovery per line, persistent state across lines) is the same one
// go-mix's repl.Start follows.
func startInteractive(reader io.Reader, writer io.Writer) {
	printBanner(writer)

	rl, err := readline.New(replPrompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	unit := scc.NewCompileUnit()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		translateFragment(writer, unit, line)
	}
}

// translateFragment parses one line against the REPL's persistent
// compile unit, so a function or type defined on an earlier line is
// visible to later ones, then re-emits the translation accumulated so
// far. This is go-mix's executeWithRecovery adapted from "evaluate and
// print a value" to "translate and print a fragment" — there is no
// value to evaluate, only emitted text or a diagnostic, and unlike
// file mode the REPL survives a bad line and keeps prompting.
func translateFragment(writer io.Writer, unit *ast.Scope, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", r)
		}
	}()

	if err := scc.ParseInto(unit, strings.NewReader(line)); err != nil {
		if d, ok := err.(*diag.Error); ok {
			redColor.Fprintf(writer, "%s\n", d.Error())
		} else {
			redColor.Fprintf(writer, "%v\n", err)
		}
		return
	}

	var out strings.Builder
	if err := scc.Emit(unit, &out); err != nil {
		redColor.Fprintf(writer, "[EMIT ERROR] %v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", out.String())
}
