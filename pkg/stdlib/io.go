package stdlib

import (
	"fmt"
	"io"
	"strings"

	"hex/pkg/object"
)

func (r *Registry) ioModule() module {
	return module{
		"print":   r.ioPrint,
		"println": r.ioPrintln,
		"input":   r.ioInput,
	}
}

func joinArgs(args []object.Object) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.Inspect())
	}
	return strings.Join(parts, " ")
}

// ioPrint writes its arguments joined by a space with no trailing
// separator.
func (r *Registry) ioPrint(args ...object.Object) object.Object {
	fmt.Fprint(r.out, joinArgs(args))
	return object.NIL
}

func (r *Registry) ioPrintln(args ...object.Object) object.Object {
	fmt.Fprintln(r.out, joinArgs(args))
	return object.NIL
}

// ioInput writes the optional prompt to the output sink, then reads one
// line from the input source and returns it without its line terminator.
func (r *Registry) ioInput(args ...object.Object) object.Object {
	if len(args) > 1 {
		return arityError("io", "input", 1, len(args))
	}

	if len(args) == 1 {
		prompt, err := stringArg("io", "input", args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return object.NewError(object.RuntimeError, "io::input failed to read input: %s", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return &object.String{Value: line}
}
