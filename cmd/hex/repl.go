package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"hex/pkg/interp"
	"hex/pkg/object"
	"hex/pkg/stdlib"
	"hex/pkg/version"
)

const defaultPrompt = ">> "
const defaultHistoryFile = ".hex_history"

func startREPL() {
	fmt.Printf("hex %s. enter 'exit' or 'quit' to leave.\n", version.Version)

	prompt := os.Getenv("HEX_PROMPT")
	if prompt == "" {
		prompt = defaultPrompt
	}
	histPath := os.Getenv("HEX_HISTORY")
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, defaultHistoryFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	// One environment for the whole session: bindings persist across
	// inputs, and an error in one line leaves earlier bindings intact.
	env := object.NewEnvironment()
	reg := stdlib.New(os.Stdout, os.Stdin)

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // io.EOF on Ctrl-D
			fmt.Println()
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("bye :3")
			break
		}

		ln.AppendHistory(line)

		result, runErr := interp.RunStatement(input, env, reg)
		if runErr != nil {
			fmt.Println(formatError(runErr))
			continue
		}
		if result != nil && result.Kind() != object.KindNil {
			fmt.Println(result.Inspect())
		}
	}
}
