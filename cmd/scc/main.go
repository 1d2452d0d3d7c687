/*
Package main is the entry point for scc, the source-to-source
compiler. It provides two modes of operation, the same split go-mix's
main/main.go draws between its interpreter's file and REPL modes:
1. File mode (default): translate a single .scc source file
2. Interactive mode (-i): read one statement at a time, parse it into
   a persistent compile unit, and print the translation of everything
   entered so far
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/scc-lang/scc"
	"github.com/scc-lang/scc/internal/diag"
)

// VERSION is scc's release tag.
var VERSION = "v1.0.0"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	var (
		output      string
		interactive bool
		run         bool
		showVersion bool
	)
	flag.StringVar(&output, "o", "", "output path for the translated program (default: the source path with its extension replaced by .cpp)")
	flag.BoolVar(&interactive, "i", false, "start interactive mode")
	flag.BoolVar(&run, "run", false, "build and execute the translated program with the system C++ toolchain")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		cyanColor.Printf("scc %s\n", VERSION)
		return
	}

	if interactive {
		startInteractive(os.Stdin, os.Stdout)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: scc [-o out.cpp] [-run] <source.scc>")
		fmt.Fprintln(os.Stderr, "       scc -i")
		os.Exit(2)
	}

	runFile(args[0], output, run)
}

// runFile reads and translates a single source file, the file-mode
// counterpart of go-mix's main.go runFile.
func runFile(path, output string, run bool) {
	source, err := os.Open(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not open '%s': %v\n", path, err)
		os.Exit(1)
	}
	defer source.Close()

	log.Printf("translating %s", path)

	unit := scc.NewCompileUnit()
	if err := scc.ParseInto(unit, source); err != nil {
		renderDiagnostic(os.Stderr, path, err)
		os.Exit(1)
	}

	outPath := output
	if outPath == "" {
		outPath = deriveOutputPath(path)
	}

	out, err := os.Create(outPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not create '%s': %v\n", outPath, err)
		os.Exit(1)
	}
	if err := scc.Emit(unit, out); err != nil {
		out.Close()
		redColor.Fprintf(os.Stderr, "[EMIT ERROR] %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	if !run {
		return
	}
	buildAndRun(outPath)
}

func deriveOutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	base := sourcePath[:len(sourcePath)-len(ext)]
	return base + ".cpp"
}

// buildAndRun shells out to the system C++ toolchain. This is the
// "external toolchain" collaborator spec.md §1 describes scc's CLI as
// an optional front end for; scc's own core never links or executes
// the translated program.
func buildAndRun(cppPath string) {
	binPath := cppPath[:len(cppPath)-len(filepath.Ext(cppPath))]

	log.Printf("building %s with g++", cppPath)
	build := exec.Command("g++", "-std=c++20", "-o", binPath, cppPath)
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		redColor.Fprintf(os.Stderr, "[TOOLCHAIN ERROR] g++ failed: %v\n", err)
		os.Exit(1)
	}

	log.Printf("running %s", binPath)
	run := exec.Command(binPath)
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	run.Stdin = os.Stdin
	if err := run.Run(); err != nil {
		redColor.Fprintf(os.Stderr, "[TOOLCHAIN ERROR] %v\n", err)
		os.Exit(1)
	}
}

// renderDiagnostic formats a *diag.Error against the offending source
// line with a caret underline (spec.md §6's required format), colorized
// with fatih/color the way go-mix's repl/main colors error output.
func renderDiagnostic(w *os.File, path string, err error) {
	d, ok := err.(*diag.Error)
	if !ok {
		redColor.Fprintf(w, "%s: error: %v\n", path, err)
		return
	}

	redColor.Fprintf(w, "%s:%d:%d: error: %s\n", path, d.StartLine, d.StartColumn, d.Message)

	line, ok := sourceLine(path, d.StartLine)
	if !ok {
		return
	}
	cyanColor.Fprintf(w, "%5d | %s\n", d.StartLine, line)

	endCol := d.EndColumn
	if d.EndLine != d.StartLine || endCol < d.StartColumn {
		endCol = len(line) + 1
	}
	gutter := fmt.Sprintf("%5s | ", "")
	caret := make([]byte, 0, endCol)
	for i := 1; i < d.StartColumn; i++ {
		caret = append(caret, ' ')
	}
	for i := d.StartColumn; i <= endCol; i++ {
		caret = append(caret, '^')
	}
	redColor.Fprintf(w, "%s%s\n", gutter, caret)
}

func sourceLine(path string, lineNo int) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	line, col := 1, 0
	start := 0
	for i, b := range data {
		if line == lineNo && col == 0 {
			start = i
			col = 1
		}
		if b == '\n' {
			if line == lineNo {
				return string(data[start:i]), true
			}
			line++
		}
	}
	if line == lineNo {
		if col == 0 { // the requested line is the empty one after a final newline
			return "", true
		}
		return string(data[start:]), true
	}
	return "", false
}
