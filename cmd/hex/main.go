package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"hex/pkg/interp"
	"hex/pkg/lexer"
	"hex/pkg/object"
	"hex/pkg/parser"
	"hex/pkg/stdlib"
	"hex/pkg/version"
)

func main() {
	// Optional .env for HEX_PROMPT / HEX_HISTORY overrides; missing files
	// are fine.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		startREPL()
		return
	}

	command := os.Args[1]

	switch command {
	case "--version", "-v", "version":
		printVersion()
		return
	case "--help", "-h", "help":
		printHelp()
		return
	}

	// A bare .hx argument runs the file directly
	if strings.HasSuffix(command, ".hx") {
		runFile(command)
		return
	}

	switch command {
	case "repl":
		startREPL()
	case "run":
		if len(os.Args) < 3 {
			fmt.Println("Usage: hex run <file.hx>")
			os.Exit(1)
		}
		runFile(os.Args[2])
	case "eval":
		if len(os.Args) < 3 {
			fmt.Println("Usage: hex eval '<code>'")
			os.Exit(1)
		}
		evalCode(os.Args[2])
	case "ast":
		if len(os.Args) < 3 {
			fmt.Println("Usage: hex ast <file.hx>")
			os.Exit(1)
		}
		printProgramAST(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printHelp()
		os.Exit(1)
	}
}

func runFile(filename string) {
	if !strings.HasSuffix(filename, ".hx") {
		fmt.Fprintln(os.Stderr, "[hex::error] file must have .hx extension")
		os.Exit(1)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[hex::error] reading file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	env := object.NewEnvironment()
	reg := stdlib.New(os.Stdout, os.Stdin)

	if _, err := interp.RunProgram(string(data), env, reg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", formatError(err))
		os.Exit(1)
	}
}

func evalCode(code string) {
	env := object.NewEnvironment()
	reg := stdlib.New(os.Stdout, os.Stdin)

	result, err := interp.RunProgram(code, env, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", formatError(err))
		os.Exit(1)
	}
	if result != nil && result.Kind() != object.KindNil {
		fmt.Println(result.Inspect())
	}
}

func printProgramAST(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[hex::error] reading file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	l := lexer.New(string(data))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s\n", formatError(e))
		}
		os.Exit(1)
	}
	fmt.Println(program.String())
}

// formatError renders a structured error the way the interpreter reports
// it: parse-stage failures and runtime failures get distinct prefixes.
func formatError(err error) string {
	if e, ok := err.(*object.Error); ok {
		switch e.ErrKind {
		case object.LexError, object.ParseError:
			return "parse error: " + e.Error()
		default:
			return "runtime error: " + e.Error()
		}
	}
	return err.Error()
}

func printVersion() {
	fmt.Printf("hex %s\n", version.Version)
	fmt.Printf("Build Date: %s\n", version.BuildDate)
	fmt.Printf("Git Commit: %s\n", version.GitCommit)
}

func printHelp() {
	fmt.Println("Hex programming language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hex                  Start the interactive REPL")
	fmt.Println("  hex <file.hx>        Run a Hex script")
	fmt.Println("  hex run <file.hx>    Run a Hex script (explicit)")
	fmt.Println("  hex repl             Start the interactive REPL")
	fmt.Println("  hex eval '<code>'    Evaluate a Hex expression")
	fmt.Println("  hex ast <file.hx>    Print the program AST")
	fmt.Println("  hex version          Show version information")
	fmt.Println("  hex help             Show this help message")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  -h, --help           Show this help message")
}
