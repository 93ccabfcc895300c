// Package interp is the boundary consumed by session drivers: it turns a
// source string into a value against a caller-owned environment and
// registry. File runners call RunProgram once per file; a REPL calls
// RunStatement once per line, reusing the same environment so bindings
// persist across inputs.
package interp

import (
	"hex/pkg/eval"
	"hex/pkg/lexer"
	"hex/pkg/object"
	"hex/pkg/parser"
	"hex/pkg/stdlib"
)

// RunProgram lexes, parses and evaluates a whole source file. Lex and
// parse failures return before anything evaluates; a runtime error aborts
// the failing statement but leaves earlier bindings in place.
func RunProgram(src string, env *object.Environment, reg *stdlib.Registry) (object.Object, error) {
	return run(src, env, reg)
}

// RunStatement evaluates one REPL input. It is RunProgram with a
// different contract: callers hold the environment open across calls and
// echo the result when it is not nil.
func RunStatement(src string, env *object.Environment, reg *stdlib.Registry) (object.Object, error) {
	return run(src, env, reg)
}

func run(src string, env *object.Environment, reg *stdlib.Registry) (object.Object, error) {
	l := lexer.New(src)
	p := parser.New(l)

	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}

	result := eval.Eval(program, env, reg)
	if err, ok := result.(*object.Error); ok {
		return nil, err
	}
	return result, nil
}
