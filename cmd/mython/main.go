package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirillZavarin/Mython/mython"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only compile the script without executing")
	stepQuota := fs.Int("step-quota", 0, "abort after this many executed statements (0 = unlimited)")
	recursionLimit := fs.Int("recursion-limit", 0, "abort once method-call nesting exceeds this depth (0 = unlimited)")
	trace := fs.Bool("trace", false, "print one line per method call to stderr")
	verbose := fs.Bool("verbose", false, "print the engine's active bounds to stderr before running")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("mython run: script path required")
	}
	scriptPath := remaining[0]
	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := mython.NewEngine(mython.Config{
		StepQuota:      *stepQuota,
		RecursionLimit: *recursionLimit,
	})
	if *verbose {
		fmt.Fprintln(os.Stderr, "config:", engine.ConfigSummary())
	}

	program, err := engine.Compile(string(source))
	if err != nil {
		return reportFailure(string(source), err)
	}
	if *checkOnly {
		return nil
	}

	ctx := mython.NewContext(os.Stdout)
	ctx.RecursionLimit = *recursionLimit
	ctx.StepQuota = *stepQuota
	if *trace {
		ctx.Trace = func(method string, pos mython.Position) {
			fmt.Fprintf(os.Stderr, "trace: %s (line %d)\n", method, pos.Line)
		}
	}

	if _, err := program.Execute(mython.NewClosure(), ctx); err != nil {
		return reportFailure(string(source), err)
	}
	return nil
}

func reportFailure(source string, err error) error {
	pos, ok := errorPosition(err)
	if ok {
		if frame := mython.FormatCodeFrame(source, pos); frame != "" {
			fmt.Fprintln(os.Stderr, frame)
		}
	}
	return err
}

func errorPosition(err error) (mython.Position, bool) {
	switch e := err.(type) {
	case *mython.LexerError:
		return e.Pos, true
	case *mython.ParseError:
		return e.Pos, true
	default:
		return mython.Position{}, false
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s run [flags] <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
	fmt.Fprintln(os.Stderr, "Flags for run:")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    only compile the script without executing")
	fmt.Fprintln(os.Stderr, "  -step-quota <n>")
	fmt.Fprintln(os.Stderr, "    abort after this many executed statements")
	fmt.Fprintln(os.Stderr, "  -recursion-limit <n>")
	fmt.Fprintln(os.Stderr, "    abort once method-call nesting exceeds this depth")
	fmt.Fprintln(os.Stderr, "  -trace")
	fmt.Fprintln(os.Stderr, "    print one line per method call to stderr")
	fmt.Fprintln(os.Stderr, "  -verbose")
	fmt.Fprintln(os.Stderr, "    print the engine's active bounds to stderr before running")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
